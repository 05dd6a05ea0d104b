package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/api"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/config"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/localdb"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/services"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/session"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/logging"
)

// App wires the services behind the REPL and carries the small amount of
// per-run display state (the signed-in email for the prompt).
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	sessions session.Store

	accounts services.AccountService
	users    services.UserService
	events   services.EventService
	refs     services.ReferenceService

	reader *bufio.Reader
	out    io.Writer

	email string // shown in the prompt after sign-in; cosmetic only
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localdb.Init(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Error(ctx, "initializing local database", "error", err)
		return nil, err
	}

	sessions := session.NewSQLiteStore(db)
	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, sessions, log)

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		sessions: sessions,
		accounts: services.NewAccountService(client, sessions),
		users:    services.NewUserService(client),
		events:   services.NewEventService(client),
		refs:     services.NewReferenceService(client),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.println("Welcome to Book My Gigs (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}

func (a *App) isSignedIn(ctx context.Context) bool {
	return a.sessions.Authenticated(ctx)
}

func (a *App) getStatus() string {
	if a.email != "" {
		return "(" + a.email + ")"
	}
	if a.sessions.Authenticated(context.Background()) {
		return "(signed in)"
	}
	return ""
}

// requireSession gates a view on authentication. When no session exists
// it prints the sign-in redirect and reports false; no request is made.
func (a *App) requireSession(ctx context.Context) bool {
	if a.isSignedIn(ctx) {
		return true
	}
	a.println("You must be signed in to do that. Use 'signin' first.")
	return false
}
