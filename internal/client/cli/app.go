package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophtasks/internal/client/client"
	"github.com/dmitrijs2005/gophtasks/internal/client/config"
	"github.com/dmitrijs2005/gophtasks/internal/client/services"
	"github.com/dmitrijs2005/gophtasks/internal/client/state"
	"github.com/dmitrijs2005/gophtasks/internal/client/tui"
	"github.com/dmitrijs2005/gophtasks/internal/logging"
)

type boardFunc func(ctx context.Context, ts services.TaskService, st state.State, limit int) (state.State, error)

type App struct {
	config *config.Config
	logger logging.Logger
	auth   services.AuthService
	tasks  services.TaskService
	db     *sql.DB
	board  boardFunc

	state state.State
	email string
	// query is the active search; empty shows pages.
	query  string
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)

	a := &App{
		config: c,
		logger: l,
		auth:   services.NewAuthService(api, db, l),
		tasks:  services.NewTaskService(api, l),
		db:     db,
		board:  tui.Run,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	sess, err := a.auth.Restore(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.state = state.New(sess.Token)
	a.email = sess.Email

	return a, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "failed to close database", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to GophTasks CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return ""
	}
	if a.email == "" {
		return "(logged in) "
	}
	return "(" + a.email + ") "
}

func (a *App) isLoggedIn() bool {
	return a.state.Auth.Authenticated
}

func (a *App) dispatch(m state.Msg) {
	a.state = state.Reduce(a.state, m)
}
