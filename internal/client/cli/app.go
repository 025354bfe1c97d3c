package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/ekaraman/skyfare/internal/client/api"
	"github.com/ekaraman/skyfare/internal/client/auth"
	"github.com/ekaraman/skyfare/internal/client/config"
	"github.com/ekaraman/skyfare/internal/client/flights"
	"github.com/ekaraman/skyfare/internal/client/search"
	"github.com/ekaraman/skyfare/internal/client/session"
	"github.com/ekaraman/skyfare/internal/client/storage"
	"github.com/ekaraman/skyfare/internal/logging"
)

// App wires the client services together and carries the state the REPL
// commands operate on.
type App struct {
	config  *config.Config
	log     logging.Logger
	store   storage.Store
	flights *flights.Service
	session *session.Session

	airportSearcher *search.AirportSearcher
	flightSearcher  *search.FlightSearcher

	// offers committed by the last flight search, kept for sort/details
	offers    []offerView
	lastWasFB bool

	reader *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) *App {
	store := storage.Open(ctx, cfg.StorePath, log)

	apiClient := api.New(cfg.APIBaseURL, cfg.APIKey, cfg.APIHost, cfg.APITimeout, log)
	flightService := flights.NewService(apiClient, cfg, log)
	authService := auth.NewService(ctx, store, cfg, log)
	sess := session.New(authService, store, log)

	return &App{
		config:          cfg,
		log:             log,
		store:           store,
		flights:         flightService,
		session:         sess,
		airportSearcher: search.NewAirportSearcher(flightService, cfg, log),
		flightSearcher:  search.NewFlightSearcher(flightService, cfg, log),
		reader:          bufio.NewReader(os.Stdin),
	}
}

// Run restores a persisted session and enters the REPL. It blocks until the
// user exits or ctx is canceled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	ctx = session.WithSession(ctx, a.session)
	a.session.CheckAuthStatus(ctx)
	if st := a.session.State(); st.Authenticated {
		printlnFn("Welcome back,", st.User.Username)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the searchers and the backing store.
func (a *App) Close() {
	a.airportSearcher.Close()
	a.flightSearcher.Abort()
	if c, ok := a.store.(interface{ Close() error }); ok {
		_ = c.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Authenticated
}

func (a *App) getStatus() string {
	st := a.session.State()
	if st.Authenticated {
		return "(" + st.User.Username + ")"
	}
	return ""
}

// waitSettled polls done until the pipeline has settled or ctx ends.
func waitSettled(ctx context.Context, done func() bool) error {
	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()
	for !done() {
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
