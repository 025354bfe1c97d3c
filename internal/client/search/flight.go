package search

import (
	"context"
	"sync"

	"github.com/ekaraman/skyfare/internal/client/config"
	"github.com/ekaraman/skyfare/internal/client/flights"
	"github.com/ekaraman/skyfare/internal/client/models"
	"github.com/ekaraman/skyfare/internal/logging"
)

// FlightAPI is the slice of the flights service the flight searcher needs.
type FlightAPI interface {
	SearchFlights(ctx context.Context, p models.FlightSearchParams) (*models.FlightSearchResponse, error)
}

// FlightState is an immutable snapshot of the flight search pipeline. Offers
// is the normalized view of the last committed response; Fallback marks it as
// the canned payload substituted after a failed request.
type FlightState struct {
	Params   models.FlightSearchParams
	Offers   []models.FlightOffer
	Loading  bool
	Err      error
	Fallback bool
}

// FlightSearcher runs at most one flight search at a time. Starting a new
// search cancels the previous one; only the latest search's outcome reaches
// the committed state.
type FlightSearcher struct {
	api FlightAPI
	log logging.Logger

	noFallback bool

	mu       sync.Mutex
	cancel   context.CancelFunc
	gen      uint64
	state    FlightState
	onChange func(FlightState)
}

// FlightOption configures a FlightSearcher at construction.
type FlightOption func(*FlightSearcher)

// WithoutFlightFallback makes failed searches surface their error instead of
// substituting the canned payload.
func WithoutFlightFallback() FlightOption {
	return func(s *FlightSearcher) { s.noFallback = true }
}

func NewFlightSearcher(api FlightAPI, cfg *config.Config, log logging.Logger, opts ...FlightOption) *FlightSearcher {
	s := &FlightSearcher{api: api, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers a callback invoked with a state snapshot after every
// observable transition. The callback runs outside the searcher's lock.
func (s *FlightSearcher) OnChange(fn func(FlightState)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// State returns the current snapshot.
func (s *FlightSearcher) State() FlightState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Search starts a flight search, canceling any search already in flight. It
// returns once the request is dispatched; results arrive through OnChange
// and State.
func (s *FlightSearcher) Search(params models.FlightSearchParams) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.state.Params = params
	s.state.Loading = true
	s.state.Err = nil
	s.notifyLocked()

	go s.run(ctx, gen, params)
}

func (s *FlightSearcher) run(ctx context.Context, gen uint64, params models.FlightSearchParams) {
	resp, err := s.api.SearchFlights(ctx, params)

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	s.state.Loading = false
	switch {
	case err == nil:
		s.state.Offers = flights.NormalizeResponse(resp)
		s.state.Err = nil
		s.state.Fallback = false
	case ctx.Err() != nil:
		// aborted, keep whatever was committed before
	case s.noFallback:
		s.state.Err = err
		s.state.Offers = nil
		s.state.Fallback = false
	default:
		s.log.Warn(ctx, "search: flight search failed, using fallback data",
			"origin", params.OriginSkyID, "destination", params.DestinationSkyID, "error", err)
		s.state.Offers = flights.NormalizeResponse(flights.FallbackFlights())
		s.state.Err = nil
		s.state.Fallback = true
	}
	s.notifyLocked()
}

// Abort cancels any in-flight search and clears the loading flag. A late
// response from the canceled request is discarded.
func (s *FlightSearcher) Abort() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.state.Loading = false
	s.notifyLocked()
}

// ClearResults drops committed offers and error.
func (s *FlightSearcher) ClearResults() {
	s.mu.Lock()
	s.state.Offers = nil
	s.state.Err = nil
	s.state.Fallback = false
	s.notifyLocked()
}

// ClearError clears only the error field.
func (s *FlightSearcher) ClearError() {
	s.mu.Lock()
	s.state.Err = nil
	s.notifyLocked()
}

func (s *FlightSearcher) notifyLocked() {
	fn := s.onChange
	snapshot := s.state
	s.mu.Unlock()
	if fn != nil {
		fn(snapshot)
	}
}
