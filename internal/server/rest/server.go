// Package rest exposes the task manager over HTTP/JSON using echo.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/logging"
	"github.com/dmitrijs2005/gophtasks/internal/server/config"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 5 * time.Second

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.UserSummary, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*models.UserSummary, error)
}

type TaskService interface {
	List(ctx context.Context, ownerID string) ([]models.Task, error)
	ListPaged(ctx context.Context, ownerID string, page, limit int) (*models.TaskPage, error)
	Create(ctx context.Context, ownerID, title, description string) (*models.Task, error)
	Update(ctx context.Context, ownerID, id string, patch models.TaskPatch) (*models.Task, error)
	Remove(ctx context.Context, ownerID, id string) error
	Search(ctx context.Context, ownerID, query string) ([]models.Task, error)
	Filter(ctx context.Context, ownerID string, completed *bool) ([]models.Task, error)
}

type ExportService interface {
	Export(ctx context.Context, ownerID string) (*models.Export, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	address string
	config  *config.Config
	logger  logging.Logger
	auth    AuthService
	tasks   TaskService
	exports ExportService
	store   Pinger
	echo    *echo.Echo
}

func NewServer(cfg *config.Config, l logging.Logger, as AuthService, ts TaskService, es ExportService, store Pinger) *Server {
	s := &Server{
		address: cfg.HTTPAddr,
		config:  cfg,
		logger:  l.With("module", "rest_server"),
		auth:    as,
		tasks:   ts,
		exports: es,
		store:   store,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError

	s.useMiddleware(e)
	s.routes(e)

	s.echo = e
	return s
}

// Handler returns the root handler. Used by tests and embedding servers.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) routes(e *echo.Echo) {
	e.GET("/healthz", s.healthz)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.register)
	authGroup.POST("/login", s.login)

	tasks := api.Group("/tasks", s.requireUser)
	tasks.GET("", s.listTasks)
	tasks.POST("", s.createTask)
	tasks.GET("/paginated", s.listTasksPaged)
	tasks.GET("/search", s.searchTasks)
	tasks.GET("/filter", s.filterTasks)
	tasks.POST("/export", s.exportTasks)
	tasks.PUT("/:id", s.updateTask)
	tasks.DELETE("/:id", s.deleteTask)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "HTTP shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
