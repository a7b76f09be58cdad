package httpserver

import (
	"context"
	"errors"
	"html/template"
	"io"
	"testing"
	"time"

	"github.com/akarsten/feedbacklens/internal/analysis"
	"github.com/akarsten/feedbacklens/internal/domain"
	"github.com/akarsten/feedbacklens/internal/export"
	"github.com/akarsten/feedbacklens/internal/platform/config"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

// --- Mock implementations ---

type mockAppService struct {
	loadDatasetFn   func(ctx context.Context, name, source string, src io.Reader) (*domain.Dataset, error)
	getDatasetFn    func(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)
	listDatasetsFn  func(ctx context.Context) ([]*domain.Dataset, error)
	deleteDatasetFn func(ctx context.Context, id uuid.UUID) error
	buildReportFn   func(ctx context.Context, id uuid.UUID, filter domain.Filter) (*domain.Report, error)
	queryRecordsFn  func(ctx context.Context, id uuid.UUID, filter domain.Filter, limit int) ([]domain.FeedbackRecord, int, error)
	wordCloudFn     func(ctx context.Context, id uuid.UUID, filter domain.Filter, label domain.SentimentLabel, limit int) ([]analysis.WordCount, error)
	exportFn        func(ctx context.Context, id uuid.UUID, filter domain.Filter, format export.Format) ([]byte, error)
}

func (m *mockAppService) LoadDataset(ctx context.Context, name, source string, src io.Reader) (*domain.Dataset, error) {
	if m.loadDatasetFn != nil {
		return m.loadDatasetFn(ctx, name, source, src)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAppService) GetDataset(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	if m.getDatasetFn != nil {
		return m.getDatasetFn(ctx, id)
	}
	return nil, domain.ErrDatasetNotFound
}

func (m *mockAppService) ListDatasets(ctx context.Context) ([]*domain.Dataset, error) {
	if m.listDatasetsFn != nil {
		return m.listDatasetsFn(ctx)
	}
	return nil, nil
}

func (m *mockAppService) DeleteDataset(ctx context.Context, id uuid.UUID) error {
	if m.deleteDatasetFn != nil {
		return m.deleteDatasetFn(ctx, id)
	}
	return nil
}

func (m *mockAppService) BuildReport(ctx context.Context, id uuid.UUID, filter domain.Filter) (*domain.Report, error) {
	if m.buildReportFn != nil {
		return m.buildReportFn(ctx, id, filter)
	}
	return nil, domain.ErrDatasetNotFound
}

func (m *mockAppService) QueryRecords(ctx context.Context, id uuid.UUID, filter domain.Filter, limit int) ([]domain.FeedbackRecord, int, error) {
	if m.queryRecordsFn != nil {
		return m.queryRecordsFn(ctx, id, filter, limit)
	}
	return nil, 0, domain.ErrDatasetNotFound
}

func (m *mockAppService) WordCloud(ctx context.Context, id uuid.UUID, filter domain.Filter, label domain.SentimentLabel, limit int) ([]analysis.WordCount, error) {
	if m.wordCloudFn != nil {
		return m.wordCloudFn(ctx, id, filter, label, limit)
	}
	return nil, domain.ErrDatasetNotFound
}

func (m *mockAppService) Export(ctx context.Context, id uuid.UUID, filter domain.Filter, format export.Format) ([]byte, error) {
	if m.exportFn != nil {
		return m.exportFn(ctx, id, filter, format)
	}
	return nil, domain.ErrDatasetNotFound
}

// --- Test helpers ---

func newTestServer(t *testing.T, app appService, opts ...func(*Server)) *Server {
	t.Helper()

	tmpl := template.Must(template.New("dashboard.html").Parse(`Dashboard {{len .Datasets}}`))

	store := sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!!"))
	store.Options = &sessions.Options{
		Path:   "/",
		MaxAge: 3600,
	}

	e := echo.New()

	srv := &Server{
		echo: e,
		config: &config.Config{
			AppEnv:              "test",
			Port:                "8080",
			MaxUploadSize:       "8M",
			UploadRatePerMinute: 60,
			SessionMaxAge:       time.Hour,
		},
		app:          app,
		sessionStore: store,
		templates:    tmpl,
		startTime:    time.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	srv.registerRoutes()

	return srv
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return ErrorHandlingMiddleware()(handler)(c)
}

func testDataset(name string, created time.Time) *domain.Dataset {
	return &domain.Dataset{
		ID:     uuid.New(),
		Name:   name,
		Source: domain.SourceUpload,
		Records: []domain.FeedbackRecord{
			{Label: domain.SentimentPositive, Domain: "billing", Comment: "great invoicing", CompoundScore: 0.62},
			{Label: domain.SentimentNegative, Domain: "technical", Comment: "app crashes", CompoundScore: -0.38},
		},
		Skipped:   1,
		CreatedAt: created,
	}
}
