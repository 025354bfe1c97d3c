package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ekaraman/skyfare/internal/client/config"
	"github.com/ekaraman/skyfare/internal/client/models"
	"github.com/ekaraman/skyfare/internal/logging"
)

type fakeAirportAPI struct {
	mu      sync.Mutex
	queries []string
	results []models.Airport
	err     error

	// when set, each call blocks until released or the context ends
	block    chan struct{}
	started  chan string
	finished chan error
}

func (f *fakeAirportAPI) SearchAirports(ctx context.Context, query string) ([]models.Airport, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	block := f.block
	results, err := f.results, f.err
	f.mu.Unlock()

	if f.started != nil {
		f.started <- query
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			results, err = nil, ctx.Err()
		}
	}
	if err != nil {
		results = nil
	}
	if f.finished != nil {
		f.finished <- err
	}
	return results, err
}

func (f *fakeAirportAPI) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.queries))
	copy(out, f.queries)
	return out
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DebounceInterval = 20 * time.Millisecond
	return cfg
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestAirportSearcherDebounceCoalesces(t *testing.T) {
	api := &fakeAirportAPI{results: []models.Airport{{SkyID: "LOND"}}}
	s := NewAirportSearcher(api, testConfig(), logging.NewDiscard())
	defer s.Close()

	s.Search("L")
	s.Search("Lo")
	s.Search("Lon")

	waitFor(t, func() bool { return len(api.calls()) == 1 })
	require.Equal(t, []string{"Lon"}, api.calls())

	waitFor(t, func() bool {
		st := s.State()
		return !st.Loading && len(st.Results) == 1
	})
	st := s.State()
	require.Equal(t, "LOND", st.Results[0].SkyID)
	require.False(t, st.Fallback)
	require.NoError(t, st.Err)
}

func TestAirportSearcherBlankQueryResetsWithoutCall(t *testing.T) {
	api := &fakeAirportAPI{results: []models.Airport{{SkyID: "LHR"}}}
	s := NewAirportSearcher(api, testConfig(), logging.NewDiscard())
	defer s.Close()

	s.Search("London")
	waitFor(t, func() bool {
		st := s.State()
		return len(st.Results) == 1
	})

	s.Search("   ")
	st := s.State()
	require.Empty(t, st.Results)
	require.False(t, st.Loading)
	require.NoError(t, st.Err)

	// no extra request ever fires for the blank query
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, []string{"London"}, api.calls())
}

func TestAirportSearcherStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	api := &fakeAirportAPI{
		results: []models.Airport{{SkyID: "STALE"}},
		block:   release,
		started: make(chan string, 4),
	}
	s := NewAirportSearcher(api, testConfig(), logging.NewDiscard())
	defer s.Close()

	s.Search("Par")
	require.Equal(t, "Par", <-api.started)

	// second keystroke supersedes the blocked first request
	api.mu.Lock()
	api.block = nil
	api.results = []models.Airport{{SkyID: "PARI"}}
	api.mu.Unlock()

	s.Search("Paris")

	// the first response settles inside the new debounce window and must not
	// surface under the new query
	close(release)
	deadline := time.Now().Add(50 * time.Millisecond)
	for time.Now().Before(deadline) {
		st := s.State()
		for _, ap := range st.Results {
			require.NotEqual(t, "STALE", ap.SkyID)
		}
		time.Sleep(2 * time.Millisecond)
	}

	require.Equal(t, "Paris", <-api.started)
	waitFor(t, func() bool {
		st := s.State()
		return !st.Loading && len(st.Results) == 1
	})
	require.Equal(t, "PARI", s.State().Results[0].SkyID)
}

func TestAirportSearcherKeystrokeCancelsInFlight(t *testing.T) {
	api := &fakeAirportAPI{
		results:  []models.Airport{{SkyID: "STALE"}},
		block:    make(chan struct{}),
		started:  make(chan string, 4),
		finished: make(chan error, 4),
	}
	s := NewAirportSearcher(api, testConfig(), logging.NewDiscard())
	defer s.Close()

	s.Search("Lon")
	require.Equal(t, "Lon", <-api.started)

	// the keystroke itself cancels the superseded request; cancellation is
	// not deferred until the next request dispatches
	s.Search("London")

	select {
	case err := <-api.finished:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("superseded request was not canceled")
	}
	require.Empty(t, s.State().Results)
}

func TestAirportSearcherFallbackOnError(t *testing.T) {
	api := &fakeAirportAPI{err: errors.New("upstream down")}
	s := NewAirportSearcher(api, testConfig(), logging.NewDiscard())
	defer s.Close()

	s.Search("New York")
	waitFor(t, func() bool {
		st := s.State()
		return !st.Loading && len(st.Results) > 0
	})

	st := s.State()
	require.True(t, st.Fallback)
	require.NoError(t, st.Err)
	require.Equal(t, "NYCA", st.Results[0].SkyID)
	require.Equal(t, "JFK", st.Results[1].SkyID)
}

func TestAirportSearcherErrorWithoutFallback(t *testing.T) {
	wantErr := errors.New("upstream down")
	api := &fakeAirportAPI{err: wantErr}
	s := NewAirportSearcher(api, testConfig(), logging.NewDiscard(), WithoutAirportFallback())
	defer s.Close()

	s.Search("New York")
	waitFor(t, func() bool {
		st := s.State()
		return !st.Loading && st.Err != nil
	})

	st := s.State()
	require.ErrorIs(t, st.Err, wantErr)
	require.Empty(t, st.Results)
	require.False(t, st.Fallback)

	s.ClearError()
	require.NoError(t, s.State().Err)
}

func TestAirportSearcherOnChangeSeesSnapshots(t *testing.T) {
	api := &fakeAirportAPI{results: []models.Airport{{SkyID: "IST"}}}
	s := NewAirportSearcher(api, testConfig(), logging.NewDiscard())
	defer s.Close()

	var mu sync.Mutex
	var sawLoading, sawResult bool
	s.OnChange(func(st AirportState) {
		mu.Lock()
		defer mu.Unlock()
		if st.Loading {
			sawLoading = true
		}
		if len(st.Results) == 1 {
			sawResult = true
		}
	})

	s.Search("Ist")
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return sawLoading && sawResult
	})
}

func TestAirportSearcherClosedIgnoresInput(t *testing.T) {
	api := &fakeAirportAPI{results: []models.Airport{{SkyID: "IST"}}}
	s := NewAirportSearcher(api, testConfig(), logging.NewDiscard())

	s.Close()
	s.Search("Ist")
	time.Sleep(50 * time.Millisecond)
	require.Empty(t, api.calls())
}
