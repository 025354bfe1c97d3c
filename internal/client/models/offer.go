package models

// FlightOffer is the canonical, display-ready shape derived deterministically
// from a raw Itinerary. Absent or malformed carrier/segment sub-structure
// degrades to documented defaults instead of failing the whole mapping.
type FlightOffer struct {
	ID             string      `json:"id"`
	Price          Price       `json:"price"`
	Legs           []FlightLeg `json:"legs"`
	Score          float64     `json:"score,omitempty"`
	SegmentsCount  int         `json:"segmentsCount,omitempty"`
	TotalDuration  int         `json:"totalDuration,omitempty"`
	TransfersCount int         `json:"transfersCount,omitempty"`
	Carriers       []Carrier   `json:"carriers,omitempty"`
	Tags           []string    `json:"tags,omitempty"`
	Deeplink       string      `json:"deeplink,omitempty"`
}

type FlightLeg struct {
	ID                string          `json:"id"`
	Origin            PlaceRef        `json:"origin"`
	Destination       PlaceRef        `json:"destination"`
	DurationInMinutes int             `json:"durationInMinutes"`
	StopCount         int             `json:"stopCount"`
	MarketingCarrier  Carrier         `json:"marketingCarrier"`
	OperatingCarrier  Carrier         `json:"operatingCarrier"`
	Departure         string          `json:"departure"`
	Arrival           string          `json:"arrival"`
	Segments          []FlightSegment `json:"segments"`
}

type FlightSegment struct {
	ID                string   `json:"id"`
	Origin            PlaceRef `json:"origin"`
	Destination       PlaceRef `json:"destination"`
	Departure         string   `json:"departure"`
	Arrival           string   `json:"arrival"`
	DurationInMinutes int      `json:"durationInMinutes"`
	FlightNumber      string   `json:"flightNumber"`
	MarketingCarrier  Carrier  `json:"marketingCarrier"`
	OperatingCarrier  Carrier  `json:"operatingCarrier"`
}

type PlaceRef struct {
	SkyID   string `json:"skyId"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Carrier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayCode string `json:"displayCode"`
}
