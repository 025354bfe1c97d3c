package flights

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ekaraman/skyfare/internal/client/models"
)

func TestNormalizeItinerariesSkipsEmptyLegs(t *testing.T) {
	offers := NormalizeItineraries([]models.Itinerary{
		{ID: "no-legs"},
		{ID: "ok", Legs: []models.Leg{{ID: "l1", DurationInMinutes: 120}}},
	})
	require.Len(t, offers, 1)
	require.Equal(t, "ok", offers[0].ID)
}

func TestNormalizeItinerariesFirstLegSummary(t *testing.T) {
	offers := NormalizeItineraries([]models.Itinerary{
		{
			ID:    "rt",
			Price: models.Price{Raw: 500, Formatted: "$500"},
			Score: 0.9,
			Legs: []models.Leg{
				{
					ID:                "out",
					DurationInMinutes: 450,
					StopCount:         1,
					Segments:          []models.Segment{{ID: "s1"}, {ID: "s2"}},
				},
				{
					ID:                "back",
					DurationInMinutes: 470,
					StopCount:         0,
				},
			},
		},
	})
	require.Len(t, offers, 1)

	o := offers[0]
	require.Equal(t, 450, o.TotalDuration)
	require.Equal(t, 1, o.TransfersCount)
	require.Equal(t, 2, o.SegmentsCount)
	require.Len(t, o.Legs, 2)
	require.Equal(t, 0.9, o.Score)
}

func TestNormalizeItinerariesCarrierDefaults(t *testing.T) {
	offers := NormalizeItineraries([]models.Itinerary{
		{ID: "bare", Legs: []models.Leg{{ID: "l1"}}},
	})
	require.Len(t, offers, 1)

	c := offers[0].Legs[0].MarketingCarrier
	require.Equal(t, "XX", c.ID)
	require.Equal(t, "Unknown Airline", c.Name)
	require.Equal(t, "XX", c.DisplayCode)
	// a legless segment list still counts as one segment
	require.Equal(t, 1, offers[0].SegmentsCount)
}

func TestNormalizeItinerariesPartialCarrier(t *testing.T) {
	offers := NormalizeItineraries([]models.Itinerary{
		{
			ID: "partial",
			Legs: []models.Leg{{
				ID: "l1",
				Carriers: models.LegCarriers{
					Marketing: []models.CarrierInfo{{ID: -31697, AlternateID: "TK"}},
				},
			}},
		},
	})

	c := offers[0].Legs[0].MarketingCarrier
	require.Equal(t, "TK", c.ID)
	require.Equal(t, "Unknown Airline", c.Name)
}

func TestNormalizeItinerariesSegmentMapping(t *testing.T) {
	offers := NormalizeItineraries([]models.Itinerary{
		{
			ID: "seg",
			Legs: []models.Leg{{
				ID: "l1",
				Origin: models.LegPlace{
					ID: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey",
				},
				Segments: []models.Segment{{
					ID: "s1",
					Origin: models.SegmentPlace{
						FlightPlaceID: "IST",
						Name:          "Istanbul Airport",
						Country:       "Turkey",
						Parent:        models.ParentPlace{Name: "Istanbul"},
					},
					FlightNumber: "1234",
					MarketingCarrier: models.SegmentCarrier{
						Name: "Turkish Airlines", AlternateID: "TK", DisplayCode: "TK",
					},
				}},
			}},
		},
	})

	seg := offers[0].Legs[0].Segments[0]
	require.Equal(t, "IST", seg.Origin.SkyID)
	require.Equal(t, "Istanbul", seg.Origin.City)
	require.Equal(t, "1234", seg.FlightNumber)
	require.Equal(t, "Turkish Airlines", seg.MarketingCarrier.Name)
	require.Equal(t, "TK", seg.MarketingCarrier.DisplayCode)

	require.Equal(t, "IST", offers[0].Legs[0].Origin.SkyID)
	require.Equal(t, "Istanbul", offers[0].Legs[0].Origin.City)
}

func TestNormalizeFallbackRoundtrip(t *testing.T) {
	offers := NormalizeResponse(FallbackFlights())
	require.Len(t, offers, 1)
	require.Equal(t, "mock-flight-1", offers[0].ID)
	require.Equal(t, 450, offers[0].TotalDuration)
	require.Equal(t, 0, offers[0].TransfersCount)
	require.Equal(t, "TK", offers[0].Legs[0].MarketingCarrier.ID)
}

func TestNormalizeResponseNil(t *testing.T) {
	require.Nil(t, NormalizeResponse(nil))
}
