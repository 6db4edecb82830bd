package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/avolkov/chargecli/internal/client/api"
	"github.com/avolkov/chargecli/internal/client/config"
	"github.com/avolkov/chargecli/internal/client/repositories/tokens"
	"github.com/avolkov/chargecli/internal/client/services"
	"github.com/avolkov/chargecli/internal/client/session"
	"github.com/avolkov/chargecli/internal/client/storage"
	"github.com/avolkov/chargecli/internal/cryptox"
	"github.com/avolkov/chargecli/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	session  *session.Controller
	stations services.StationService
	bookings services.BookingService
	users    services.UserService
	notifier *Notifier
	nav      *Navigator
	reader   *bufio.Reader
	out      io.Writer
	sleep    func(time.Duration)
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()
	log := logging.NewDefault(c.Verbose)

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	key, err := cryptox.LoadOrCreateSecret(c.SecretPath)
	if err != nil {
		return nil, fmt.Errorf("loading local secret: %w", err)
	}
	box, err := cryptox.NewSealedBox(key)
	if err != nil {
		return nil, fmt.Errorf("initializing sealed box: %w", err)
	}
	store := tokens.NewSQLiteStore(db, box)

	reader := bufio.NewReader(os.Stdin)
	notifier := NewNotifier(reader, os.Stdout)
	nav := NewNavigator(os.Stdout)

	// The gateway needs the session's credential and the session needs the
	// gateway, so the token func and the 401 hook close over the variable
	// assigned right after construction.
	var ctrl *session.Controller
	apiClient := api.New(c.APIBaseURL,
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(log),
		api.WithToken(func() string {
			if ctrl == nil {
				return ""
			}
			return ctrl.Credential()
		}),
		api.WithUnauthorizedHook(func() {
			if ctrl != nil {
				ctrl.ForceLogout(context.Background())
			}
		}),
	)
	ctrl = session.New(apiClient, store, notifier, nav, log)

	return &App{
		config:   c,
		log:      log,
		db:       db,
		session:  ctrl,
		stations: services.NewStationService(apiClient, log),
		bookings: services.NewBookingService(apiClient, log),
		users:    services.NewUserService(apiClient, ctrl, log),
		notifier: notifier,
		nav:      nav,
		reader:   reader,
		out:      os.Stdout,
		sleep:    time.Sleep,
	}, nil
}

// Run rehydrates the persisted session, lands the user on the right screen
// and starts the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.session.Rehydrate(ctx); err != nil {
		a.log.Warn(ctx, "session rehydration failed", "error", err)
	}
	if a.session.IsAuthenticated() {
		a.nav.Redirect(a.session.DashboardRoute())
	}

	a.Root(ctx)
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}
