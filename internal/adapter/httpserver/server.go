// Package httpserver exposes the feedback analysis service over HTTP.
package httpserver

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/akarsten/feedbacklens/internal/analysis"
	"github.com/akarsten/feedbacklens/internal/domain"
	"github.com/akarsten/feedbacklens/internal/export"
	"github.com/akarsten/feedbacklens/internal/platform/config"
	"github.com/akarsten/feedbacklens/web"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

type appService interface {
	LoadDataset(ctx context.Context, name, source string, src io.Reader) (*domain.Dataset, error)
	GetDataset(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)
	ListDatasets(ctx context.Context) ([]*domain.Dataset, error)
	DeleteDataset(ctx context.Context, id uuid.UUID) error
	BuildReport(ctx context.Context, id uuid.UUID, filter domain.Filter) (*domain.Report, error)
	QueryRecords(ctx context.Context, id uuid.UUID, filter domain.Filter, limit int) ([]domain.FeedbackRecord, int, error)
	WordCloud(ctx context.Context, id uuid.UUID, filter domain.Filter, label domain.SentimentLabel, limit int) ([]analysis.WordCount, error)
	Export(ctx context.Context, id uuid.UUID, filter domain.Filter, format export.Format) ([]byte, error)
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app appService

	metricsHandler    http.Handler
	metricsMiddleware echo.MiddlewareFunc

	templates    *template.Template
	sessionStore *sessions.CookieStore
	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, app appService, metricsHandler http.Handler, metricsMiddleware echo.MiddlewareFunc, healthChecks []HealthCheck) (*Server, error) {
	templates, err := template.ParseFS(web.TemplateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:              e,
		config:            cfg,
		app:               app,
		metricsHandler:    metricsHandler,
		metricsMiddleware: metricsMiddleware,
		templates:         templates,
		sessionStore:      setupSessionStore(cfg),
		healthChecks:      healthChecks,
		startTime:         time.Now(),
	}

	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// Session keys
const (
	sessionName             = "feedbacklens-session"
	sessionKeyActiveDataset = "active_dataset"
)

func (s *Server) renderTemplate(c echo.Context, name string, data any) error {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("Template execution failed", "path", c.Request().URL.Path, "error", err)
		if err := c.String(http.StatusInternalServerError, "Failed to render page"); err != nil {
			return fmt.Errorf("failed to send error response: %w", err)
		}
		return nil
	}
	if err := c.HTMLBlob(http.StatusOK, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to send HTML response: %w", err)
	}
	return nil
}

// setActiveDataset remembers the caller's most recently loaded dataset in
// the cookie session. Failures are logged, not fatal: the API works without
// a session.
func (s *Server) setActiveDataset(c echo.Context, id uuid.UUID) {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		slog.WarnContext(c.Request().Context(), "Failed to get session", "error", err)
		return
	}
	session.Values[sessionKeyActiveDataset] = id.String()
	if err := session.Save(c.Request(), c.Response()); err != nil {
		slog.WarnContext(c.Request().Context(), "Failed to save session", "error", err)
	}
}

// activeDataset returns the session's active dataset ID, or uuid.Nil.
func (s *Server) activeDataset(c echo.Context) uuid.UUID {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		return uuid.Nil
	}
	raw, ok := session.Values[sessionKeyActiveDataset].(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func (s *Server) clearActiveDataset(c echo.Context, id uuid.UUID) {
	if s.activeDataset(c) != id {
		return
	}
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		return
	}
	delete(session.Values, sessionKeyActiveDataset)
	if err := session.Save(c.Request(), c.Response()); err != nil {
		slog.WarnContext(c.Request().Context(), "Failed to save session", "error", err)
	}
}

func setupSessionStore(cfg *config.Config) *sessions.CookieStore {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.AppEnv == "production",
		SameSite: http.SameSiteLaxMode,
	}
	return sessionStore
}
