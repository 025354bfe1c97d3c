// Package flights is the stateless façade over the flight-search API: it
// builds queries from typed parameters, decodes the raw response shapes, and
// owns the canned fallback payloads plus the normalization of itineraries
// into display-ready offers.
package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ekaraman/skyfare/internal/client/config"
	"github.com/ekaraman/skyfare/internal/client/models"
	"github.com/ekaraman/skyfare/internal/common"
	"github.com/ekaraman/skyfare/internal/logging"
)

const (
	endpointSearchFlights  = "/api/v2/flights/searchFlights"
	endpointSearchAirports = "/api/v1/flights/searchAirport"
	endpointNearbyAirports = "/api/v1/flights/getNearByAirports"
	endpointFlightDetails  = "/api/v1/flights/getFlightDetails"
	endpointPriceCalendar  = "/api/v1/flights/getPriceCalendar"
)

// API is the minimal transport surface the service needs. The real
// implementation is api.Client; tests provide a fake.
type API interface {
	GetJSON(ctx context.Context, path string, query url.Values, out any) error
}

type Service struct {
	api API
	cfg *config.Config
	log logging.Logger
}

func NewService(api API, cfg *config.Config, log logging.Logger) *Service {
	return &Service{api: api, cfg: cfg, log: log}
}

// SearchFlights runs a flight search. Transport failures propagate; callers
// wanting the offline-friendly behavior substitute FallbackFlights themselves
// and tag the result as fallback data.
func (s *Service) SearchFlights(ctx context.Context, p models.FlightSearchParams) (*models.FlightSearchResponse, error) {
	s.log.Debug(ctx, "flights: searching flights",
		"origin", p.OriginSkyID, "destination", p.DestinationSkyID, "date", p.Date)

	adults := p.Adults
	if adults <= 0 {
		adults = 1
	}

	q := url.Values{}
	q.Set("originSkyId", p.OriginSkyID)
	q.Set("destinationSkyId", p.DestinationSkyID)
	q.Set("originEntityId", p.OriginEntityID)
	q.Set("destinationEntityId", p.DestinationEntityID)
	q.Set("date", p.Date)
	q.Set("adults", strconv.Itoa(adults))
	q.Set("currency", orDefault(p.Currency, s.cfg.Currency))
	q.Set("market", orDefault(p.Market, s.cfg.Market))
	q.Set("countryCode", orDefault(p.CountryCode, s.cfg.CountryCode))

	if p.ReturnDate != "" {
		q.Set("returnDate", p.ReturnDate)
	}
	if p.Children > 0 {
		// the remote API spells this parameter "childrens"
		q.Set("childrens", strconv.Itoa(p.Children))
	}
	if p.Infants > 0 {
		q.Set("infants", strconv.Itoa(p.Infants))
	}
	if p.CabinClass != "" {
		q.Set("cabinClass", string(p.CabinClass))
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}

	var resp models.FlightSearchResponse
	if err := s.api.GetJSON(ctx, endpointSearchFlights, q, &resp); err != nil {
		s.log.Error(ctx, "flights: flight search failed", "error", err)
		return nil, err
	}

	s.log.Debug(ctx, "flights: flight search successful",
		"results", resp.Data.Context.TotalResults)
	return &resp, nil
}

// SearchAirports resolves a free-text query to airport/place descriptors.
func (s *Service) SearchAirports(ctx context.Context, query string) ([]models.Airport, error) {
	s.log.Debug(ctx, "flights: searching airports", "query", query)

	q := url.Values{}
	q.Set("query", query)

	var resp models.AirportSearchResponse
	if err := s.api.GetJSON(ctx, endpointSearchAirports, q, &resp); err != nil {
		s.log.Error(ctx, "flights: airport search failed", "error", err)
		return nil, err
	}
	return resp.Data, nil
}

// GetNearbyAirports looks up airports around the given coordinates.
func (s *Service) GetNearbyAirports(ctx context.Context, lat, lng float64) (*models.NearbyAirportsResponse, error) {
	s.log.Debug(ctx, "flights: getting nearby airports", "lat", lat, "lng", lng)

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))

	var resp models.NearbyAirportsResponse
	if err := s.api.GetJSON(ctx, endpointNearbyAirports, q, &resp); err != nil {
		s.log.Error(ctx, "flights: nearby airports lookup failed", "error", err)
		return nil, err
	}
	return &resp, nil
}

// GetFlightDetails fetches the detail payload for one itinerary. Unlike the
// search calls there is no fallback: failures surface as ErrDetailsFetch.
func (s *Service) GetFlightDetails(ctx context.Context, itineraryID string) (json.RawMessage, error) {
	s.log.Debug(ctx, "flights: getting flight details", "itineraryId", itineraryID)

	q := url.Values{}
	q.Set("itineraryId", itineraryID)
	q.Set("currency", s.cfg.Currency)
	q.Set("market", s.cfg.Market)
	q.Set("countryCode", s.cfg.CountryCode)
	q.Set("locale", s.cfg.Locale)

	var raw json.RawMessage
	if err := s.api.GetJSON(ctx, endpointFlightDetails, q, &raw); err != nil {
		s.log.Error(ctx, "flights: flight details fetch failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrDetailsFetch, err)
	}
	return raw, nil
}

// GetPriceCalendar fetches day-by-day price bands for a route.
func (s *Service) GetPriceCalendar(ctx context.Context, originSkyID, fromDate string) (json.RawMessage, error) {
	s.log.Debug(ctx, "flights: getting price calendar", "origin", originSkyID, "fromDate", fromDate)

	q := url.Values{}
	q.Set("originSkyId", originSkyID)
	q.Set("fromDate", fromDate)
	q.Set("currency", s.cfg.Currency)

	var raw json.RawMessage
	if err := s.api.GetJSON(ctx, endpointPriceCalendar, q, &raw); err != nil {
		s.log.Error(ctx, "flights: price calendar fetch failed", "error", err)
		return nil, err
	}
	return raw, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
