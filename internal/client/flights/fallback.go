package flights

import (
	"time"

	"github.com/ekaraman/skyfare/internal/client/models"
)

// Canned payloads substituted by callers when a search call fails on the
// wire, keeping the UI populated despite backend unavailability. Consumers
// must tag substituted data explicitly so real and synthetic results never
// blend silently.

// FallbackFlights returns a single mock IST→LHR itinerary departing tomorrow.
func FallbackFlights() *models.FlightSearchResponse {
	departure := time.Now().Add(24 * time.Hour).UTC()
	arrival := departure.Add(450 * time.Minute)

	return &models.FlightSearchResponse{
		Status:    true,
		Timestamp: time.Now().UnixMilli(),
		Data: models.FlightData{
			Context: models.SearchContext{
				Status:       "incomplete",
				SessionID:    "mock-session",
				TotalResults: 2,
			},
			Itineraries: []models.Itinerary{
				{
					ID:              "mock-flight-1",
					Price:           models.Price{Raw: 299, Formatted: "$299"},
					PricingOptionID: "mock-pricing-1",
					Legs: []models.Leg{
						{
							ID: "leg1",
							Origin: models.LegPlace{
								ID: "IST", EntityID: "95673467", Name: "Istanbul Airport",
								DisplayCode: "IST", City: "Istanbul", Country: "Turkey",
							},
							Destination: models.LegPlace{
								ID: "LHR", EntityID: "95565050", Name: "London Heathrow",
								DisplayCode: "LHR", City: "London", Country: "United Kingdom",
							},
							DurationInMinutes: 450,
							StopCount:         0,
							IsSmallestStops:   true,
							Departure:         departure.Format(time.RFC3339),
							Arrival:           arrival.Format(time.RFC3339),
							Carriers: models.LegCarriers{
								Marketing: []models.CarrierInfo{
									{
										ID:          -31697,
										AlternateID: "TK",
										LogoURL:     "https://logos.skyscnr.com/images/airlines/favicon/TK.png",
										Name:        "Turkish Airlines",
									},
								},
							},
							Segments: []models.Segment{
								{
									ID: "mock-segment-1",
									Origin: models.SegmentPlace{
										FlightPlaceID: "IST", DisplayCode: "IST",
										Parent: models.ParentPlace{
											FlightPlaceID: "ISTA", DisplayCode: "IST",
											Name: "Istanbul", Type: "City",
										},
										Name: "Istanbul Airport", Type: "Airport", Country: "Turkey",
									},
									Destination: models.SegmentPlace{
										FlightPlaceID: "LHR", DisplayCode: "LHR",
										Parent: models.ParentPlace{
											FlightPlaceID: "LOND", DisplayCode: "LON",
											Name: "London", Type: "City",
										},
										Name: "London Heathrow", Type: "Airport", Country: "United Kingdom",
									},
									Departure:         departure.Format(time.RFC3339),
									Arrival:           arrival.Format(time.RFC3339),
									DurationInMinutes: 450,
									FlightNumber:      "1234",
									MarketingCarrier: models.SegmentCarrier{
										ID: -31697, Name: "Turkish Airlines", AlternateID: "TK",
										AllianceID: -31998, DisplayCode: "TK",
									},
									OperatingCarrier: models.SegmentCarrier{
										ID: -31697, Name: "Turkish Airlines", AlternateID: "TK",
										AllianceID: -31998, DisplayCode: "TK",
									},
									TransportMode: "TRANSPORT_MODE_FLIGHT",
								},
							},
						},
					},
				},
			},
		},
	}
}

// FallbackAirports returns the fixed two-entry list: New York as a city plus
// the JFK airport.
func FallbackAirports() []models.Airport {
	return []models.Airport{
		{
			SkyID:    "NYCA",
			EntityID: "27537542",
			Presentation: models.AirportPresentation{
				Title:           "New York",
				SuggestionTitle: "New York (Any)",
				Subtitle:        "United States",
			},
			Navigation: models.AirportNavigation{
				EntityID:      "27537542",
				EntityType:    "CITY",
				LocalizedName: "New York",
				RelevantFlightParams: models.FlightParamsRef{
					SkyID: "NYCA", EntityID: "27537542",
					FlightPlaceType: "CITY", LocalizedName: "New York",
				},
				RelevantHotelParams: models.HotelParamsRef{
					EntityID: "27537542", EntityType: "CITY", LocalizedName: "New York",
				},
			},
		},
		{
			SkyID:    "JFK",
			EntityID: "95565058",
			Presentation: models.AirportPresentation{
				Title:           "New York John F. Kennedy",
				SuggestionTitle: "New York John F. Kennedy (JFK)",
				Subtitle:        "United States",
			},
			Navigation: models.AirportNavigation{
				EntityID:      "95565058",
				EntityType:    "AIRPORT",
				LocalizedName: "New York John F. Kennedy",
				RelevantFlightParams: models.FlightParamsRef{
					SkyID: "JFK", EntityID: "95565058",
					FlightPlaceType: "AIRPORT", LocalizedName: "New York John F. Kennedy",
				},
				RelevantHotelParams: models.HotelParamsRef{
					EntityID: "27537542", EntityType: "CITY", LocalizedName: "New York",
				},
			},
		},
	}
}

// FallbackNearby returns a payload centered on Istanbul with empty
// nearby/recent lists.
func FallbackNearby() *models.NearbyAirportsResponse {
	return &models.NearbyAirportsResponse{
		Status:    true,
		Timestamp: time.Now().UnixMilli(),
		Data: models.NearbyData{
			Current: models.Airport{
				SkyID:    "IST",
				EntityID: "95673467",
				Presentation: models.AirportPresentation{
					Title:           "Istanbul",
					SuggestionTitle: "Istanbul (IST)",
					Subtitle:        "Turkey",
				},
				Navigation: models.AirportNavigation{
					EntityID:      "95673467",
					EntityType:    "AIRPORT",
					LocalizedName: "Istanbul",
					RelevantFlightParams: models.FlightParamsRef{
						SkyID: "IST", EntityID: "95673467",
						FlightPlaceType: "AIRPORT", LocalizedName: "Istanbul",
					},
					RelevantHotelParams: models.HotelParamsRef{
						EntityID: "27544008", EntityType: "CITY", LocalizedName: "Istanbul",
					},
				},
			},
			Nearby: []models.Airport{},
			Recent: []models.Airport{},
		},
	}
}
