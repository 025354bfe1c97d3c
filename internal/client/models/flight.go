package models

// CabinClass enumerates the cabin classes accepted by the flight search.
type CabinClass string

const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// FlightSearchParams is an immutable value built fresh per search invocation.
// Origin/destination are sky-id + entity-id pairs as returned by the airport
// search; dates are ISO "YYYY-MM-DD" strings.
type FlightSearchParams struct {
	OriginSkyID         string
	DestinationSkyID    string
	OriginEntityID      string
	DestinationEntityID string
	Date                string
	ReturnDate          string
	CabinClass          CabinClass
	Adults              int
	Children            int
	Infants             int
	SortBy              string
	Currency            string
	Market              string
	CountryCode         string
}

// FlightSearchResponse is the raw envelope of the flight search endpoint.
type FlightSearchResponse struct {
	Status    bool       `json:"status"`
	Timestamp int64      `json:"timestamp"`
	Data      FlightData `json:"data"`
}

type FlightData struct {
	Context     SearchContext `json:"context"`
	Itineraries []Itinerary   `json:"itineraries"`
}

type SearchContext struct {
	Status       string `json:"status"`
	SessionID    string `json:"sessionId"`
	TotalResults int    `json:"totalResults"`
}

type Itinerary struct {
	ID              string  `json:"id"`
	Price           Price   `json:"price"`
	PricingOptionID string  `json:"pricingOptionId"`
	Score           float64 `json:"score"`
	Legs            []Leg   `json:"legs"`
}

type Price struct {
	Raw       float64 `json:"raw"`
	Formatted string  `json:"formatted"`
}

type Leg struct {
	ID                string      `json:"id"`
	Origin            LegPlace    `json:"origin"`
	Destination       LegPlace    `json:"destination"`
	DurationInMinutes int         `json:"durationInMinutes"`
	StopCount         int         `json:"stopCount"`
	IsSmallestStops   bool        `json:"isSmallestStops"`
	Departure         string      `json:"departure"`
	Arrival           string      `json:"arrival"`
	TimeDeltaInDays   int         `json:"timeDeltaInDays"`
	Carriers          LegCarriers `json:"carriers"`
	Segments          []Segment   `json:"segments"`
}

type LegPlace struct {
	ID            string `json:"id"`
	EntityID      string `json:"entityId"`
	Name          string `json:"name"`
	DisplayCode   string `json:"displayCode"`
	City          string `json:"city"`
	Country       string `json:"country"`
	IsHighlighted bool   `json:"isHighlighted"`
}

type LegCarriers struct {
	Marketing []CarrierInfo `json:"marketing"`
	Operating []CarrierInfo `json:"operating,omitempty"`
}

type CarrierInfo struct {
	ID            int    `json:"id"`
	AlternateID   string `json:"alternateId"`
	LogoURL       string `json:"logoUrl"`
	Name          string `json:"name"`
	OperationType string `json:"operationType,omitempty"`
}

type Segment struct {
	ID                string         `json:"id"`
	Origin            SegmentPlace   `json:"origin"`
	Destination       SegmentPlace   `json:"destination"`
	Departure         string         `json:"departure"`
	Arrival           string         `json:"arrival"`
	DurationInMinutes int            `json:"durationInMinutes"`
	FlightNumber      string         `json:"flightNumber"`
	MarketingCarrier  SegmentCarrier `json:"marketingCarrier"`
	OperatingCarrier  SegmentCarrier `json:"operatingCarrier"`
	TransportMode     string         `json:"transportMode"`
}

type SegmentPlace struct {
	FlightPlaceID string      `json:"flightPlaceId"`
	DisplayCode   string      `json:"displayCode"`
	Parent        ParentPlace `json:"parent"`
	Name          string      `json:"name"`
	Type          string      `json:"type"`
	Country       string      `json:"country"`
}

type ParentPlace struct {
	FlightPlaceID string `json:"flightPlaceId"`
	DisplayCode   string `json:"displayCode"`
	Name          string `json:"name"`
	Type          string `json:"type"`
}

type SegmentCarrier struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	AlternateID string `json:"alternateId"`
	AllianceID  int    `json:"allianceId"`
	DisplayCode string `json:"displayCode"`
}
