package flights

import "github.com/ekaraman/skyfare/internal/client/models"

// Defaults substituted when the API omits carrier sub-structure.
const (
	unknownCarrierCode = "XX"
	unknownCarrierName = "Unknown Airline"
)

// NormalizeResponse maps a raw search response into the canonical offer list.
func NormalizeResponse(resp *models.FlightSearchResponse) []models.FlightOffer {
	if resp == nil {
		return nil
	}
	return NormalizeItineraries(resp.Data.Itineraries)
}

// NormalizeItineraries deterministically maps raw itineraries into
// FlightOffers. Itineraries without legs are dropped; missing carrier or
// segment data degrades to the documented defaults rather than failing the
// whole mapping.
func NormalizeItineraries(itineraries []models.Itinerary) []models.FlightOffer {
	offers := make([]models.FlightOffer, 0, len(itineraries))

	for _, it := range itineraries {
		if len(it.Legs) == 0 {
			continue
		}
		firstLeg := it.Legs[0]

		segmentsCount := len(firstLeg.Segments)
		if segmentsCount == 0 {
			segmentsCount = 1
		}

		offer := models.FlightOffer{
			ID:             it.ID,
			Price:          it.Price,
			Score:          it.Score,
			TotalDuration:  firstLeg.DurationInMinutes,
			TransfersCount: firstLeg.StopCount,
			SegmentsCount:  segmentsCount,
			Carriers:       normalizeCarrierList(firstLeg.Carriers.Marketing),
			Tags:           []string{},
			Legs:           make([]models.FlightLeg, 0, len(it.Legs)),
		}

		for _, leg := range it.Legs {
			carrier := marketingCarrier(leg.Carriers.Marketing)

			nl := models.FlightLeg{
				ID: leg.ID,
				Origin: models.PlaceRef{
					SkyID: leg.Origin.ID, Name: leg.Origin.Name,
					City: leg.Origin.City, Country: leg.Origin.Country,
				},
				Destination: models.PlaceRef{
					SkyID: leg.Destination.ID, Name: leg.Destination.Name,
					City: leg.Destination.City, Country: leg.Destination.Country,
				},
				DurationInMinutes: leg.DurationInMinutes,
				StopCount:         leg.StopCount,
				Departure:         leg.Departure,
				Arrival:           leg.Arrival,
				MarketingCarrier:  carrier,
				OperatingCarrier:  carrier,
				Segments:          make([]models.FlightSegment, 0, len(leg.Segments)),
			}

			for _, seg := range leg.Segments {
				nl.Segments = append(nl.Segments, models.FlightSegment{
					ID: seg.ID,
					Origin: models.PlaceRef{
						SkyID: seg.Origin.FlightPlaceID, Name: seg.Origin.Name,
						City: seg.Origin.Parent.Name, Country: seg.Origin.Country,
					},
					Destination: models.PlaceRef{
						SkyID: seg.Destination.FlightPlaceID, Name: seg.Destination.Name,
						City: seg.Destination.Parent.Name, Country: seg.Destination.Country,
					},
					Departure:         seg.Departure,
					Arrival:           seg.Arrival,
					DurationInMinutes: seg.DurationInMinutes,
					FlightNumber:      seg.FlightNumber,
					MarketingCarrier:  segmentCarrier(seg.MarketingCarrier),
					OperatingCarrier:  segmentCarrier(seg.OperatingCarrier),
				})
			}

			offer.Legs = append(offer.Legs, nl)
		}

		offers = append(offers, offer)
	}

	return offers
}

// marketingCarrier picks the first marketing carrier of a leg, degrading to
// the unknown-carrier defaults when the list is empty or fields are blank.
func marketingCarrier(marketing []models.CarrierInfo) models.Carrier {
	if len(marketing) == 0 {
		return models.Carrier{ID: unknownCarrierCode, Name: unknownCarrierName, DisplayCode: unknownCarrierCode}
	}

	c := marketing[0]
	id := c.AlternateID
	if id == "" {
		id = unknownCarrierCode
	}
	name := c.Name
	if name == "" {
		name = unknownCarrierName
	}
	return models.Carrier{ID: id, Name: name, DisplayCode: id}
}

func normalizeCarrierList(marketing []models.CarrierInfo) []models.Carrier {
	if len(marketing) == 0 {
		return nil
	}
	out := make([]models.Carrier, 0, len(marketing))
	for _, c := range marketing {
		out = append(out, marketingCarrier([]models.CarrierInfo{c}))
	}
	return out
}

func segmentCarrier(c models.SegmentCarrier) models.Carrier {
	id := c.AlternateID
	if id == "" {
		id = unknownCarrierCode
	}
	name := c.Name
	if name == "" {
		name = unknownCarrierName
	}
	code := c.DisplayCode
	if code == "" {
		code = id
	}
	return models.Carrier{ID: id, Name: name, DisplayCode: code}
}
