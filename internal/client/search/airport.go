// Package search owns the asynchronous query pipelines sitting between the
// user's keystrokes and the flights façade. Searchers debounce input, cancel
// superseded requests and guarantee that only the latest request's outcome is
// ever committed to observable state.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ekaraman/skyfare/internal/client/config"
	"github.com/ekaraman/skyfare/internal/client/flights"
	"github.com/ekaraman/skyfare/internal/client/models"
	"github.com/ekaraman/skyfare/internal/logging"
)

// AirportAPI is the slice of the flights service the airport searcher needs.
type AirportAPI interface {
	SearchAirports(ctx context.Context, query string) ([]models.Airport, error)
}

// AirportState is an immutable snapshot of the autocomplete pipeline.
// Fallback is true when Results holds the canned payload substituted after a
// failed request rather than live data.
type AirportState struct {
	Query    string
	Results  []models.Airport
	Loading  bool
	Err      error
	Fallback bool
}

// AirportSearcher debounces free-text queries into airport lookups. A new
// keystroke restarts the debounce window and cancels any request already in
// flight; a blank query resets the state synchronously without touching the
// network.
type AirportSearcher struct {
	api      AirportAPI
	log      logging.Logger
	debounce time.Duration

	noFallback bool

	mu       sync.Mutex
	timer    *time.Timer
	cancel   context.CancelFunc
	gen      uint64
	state    AirportState
	onChange func(AirportState)
	closed   bool
}

// AirportOption configures an AirportSearcher at construction.
type AirportOption func(*AirportSearcher)

// WithoutAirportFallback makes failed lookups surface their error instead of
// substituting the canned payload.
func WithoutAirportFallback() AirportOption {
	return func(s *AirportSearcher) { s.noFallback = true }
}

func NewAirportSearcher(api AirportAPI, cfg *config.Config, log logging.Logger, opts ...AirportOption) *AirportSearcher {
	s := &AirportSearcher{
		api:      api,
		log:      log,
		debounce: cfg.DebounceInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers a callback invoked with a state snapshot after every
// observable transition. The callback runs outside the searcher's lock.
func (s *AirportSearcher) OnChange(fn func(AirportState)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// State returns the current snapshot.
func (s *AirportSearcher) State() AirportState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Search records a keystroke of the autocomplete query. Blank input resets
// results, error and loading immediately; anything else cancels whatever is
// pending or in flight and restarts the debounce window, so only the last
// keystroke of a burst reaches the network and a superseded request can never
// commit, even if it settles before the new window fires.
func (s *AirportSearcher) Search(query string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.state.Query = query
	s.stopPendingLocked()

	if strings.TrimSpace(query) == "" {
		s.state.Results = nil
		s.state.Loading = false
		s.state.Err = nil
		s.state.Fallback = false
		s.notifyLocked()
		return
	}

	q := query
	s.timer = time.AfterFunc(s.debounce, func() { s.run(q) })
	s.notifyLocked()
}

// ClearResults drops the current result list and error without touching an
// in-flight request.
func (s *AirportSearcher) ClearResults() {
	s.mu.Lock()
	s.state.Results = nil
	s.state.Err = nil
	s.state.Fallback = false
	s.notifyLocked()
}

// ClearError clears only the error field.
func (s *AirportSearcher) ClearError() {
	s.mu.Lock()
	s.state.Err = nil
	s.notifyLocked()
}

// Close stops the debounce timer and cancels any in-flight request. The
// searcher ignores further input afterwards.
func (s *AirportSearcher) Close() {
	s.mu.Lock()
	s.closed = true
	s.stopPendingLocked()
	s.mu.Unlock()
}

func (s *AirportSearcher) stopPendingLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
}

// run fires after the debounce window. It supersedes any request still in
// flight and commits its own outcome only if no newer request started while
// it was on the wire.
func (s *AirportSearcher) run(query string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.state.Loading = true
	s.state.Err = nil
	s.notifyLocked()

	results, err := s.api.SearchAirports(ctx, query)

	s.mu.Lock()
	if s.gen != gen {
		// a newer request superseded this one
		s.mu.Unlock()
		return
	}
	s.state.Loading = false
	switch {
	case err == nil:
		if results == nil {
			results = []models.Airport{}
		}
		s.state.Results = results
		s.state.Err = nil
		s.state.Fallback = false
	case ctx.Err() != nil:
		// canceled on purpose, nothing to report
	case s.noFallback:
		s.state.Err = err
		s.state.Results = nil
		s.state.Fallback = false
	default:
		s.log.Warn(ctx, "search: airport lookup failed, using fallback data",
			"query", query, "error", err)
		s.state.Results = flights.FallbackAirports()
		s.state.Err = nil
		s.state.Fallback = true
	}
	s.notifyLocked()
}

// notifyLocked snapshots state and callback, releases the lock and invokes
// the callback. Callers must hold s.mu; it is unlocked on return.
func (s *AirportSearcher) notifyLocked() {
	fn := s.onChange
	snapshot := s.state
	s.mu.Unlock()
	if fn != nil {
		fn(snapshot)
	}
}
