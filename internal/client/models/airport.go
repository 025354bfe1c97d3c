package models

// Airport is an opaque pass-through of the API's airport/place descriptor,
// used for display and for re-submission as flight-search parameters.
type Airport struct {
	SkyID        string              `json:"skyId"`
	EntityID     string              `json:"entityId"`
	Presentation AirportPresentation `json:"presentation"`
	Navigation   AirportNavigation   `json:"navigation"`
}

type AirportPresentation struct {
	Title           string `json:"title"`
	SuggestionTitle string `json:"suggestionTitle"`
	Subtitle        string `json:"subtitle"`
}

type AirportNavigation struct {
	EntityID             string             `json:"entityId"`
	EntityType           string             `json:"entityType"`
	LocalizedName        string             `json:"localizedName"`
	RelevantFlightParams FlightParamsRef    `json:"relevantFlightParams"`
	RelevantHotelParams  HotelParamsRef     `json:"relevantHotelParams"`
}

type FlightParamsRef struct {
	SkyID           string `json:"skyId"`
	EntityID        string `json:"entityId"`
	FlightPlaceType string `json:"flightPlaceType"`
	LocalizedName   string `json:"localizedName"`
}

type HotelParamsRef struct {
	EntityID      string `json:"entityId"`
	EntityType    string `json:"entityType"`
	LocalizedName string `json:"localizedName"`
}

// AirportSearchResponse is the envelope of the airport search endpoint.
type AirportSearchResponse struct {
	Status    bool      `json:"status"`
	Timestamp int64     `json:"timestamp"`
	Data      []Airport `json:"data"`
}

// NearbyAirportsResponse is the envelope of the nearby-airports endpoint.
type NearbyAirportsResponse struct {
	Status    bool        `json:"status"`
	Timestamp int64       `json:"timestamp"`
	Data      NearbyData  `json:"data"`
}

type NearbyData struct {
	Current Airport   `json:"current"`
	Nearby  []Airport `json:"nearby"`
	Recent  []Airport `json:"recent"`
}
