// Package app orchestrates the feedback analysis pipeline: dataset
// lifecycle, report building and export. Every request works on its own
// immutable dataset snapshot; nothing is shared mutably across requests.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/akarsten/feedbacklens/data"
	"github.com/akarsten/feedbacklens/internal/analysis"
	"github.com/akarsten/feedbacklens/internal/domain"
	"github.com/akarsten/feedbacklens/internal/export"
	"github.com/akarsten/feedbacklens/internal/ingest"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// PipelineRecorder receives pipeline metrics. Implemented by the
// Prometheus adapter; NopRecorder is used where metrics are not wired.
type PipelineRecorder interface {
	DatasetLoaded(source string)
	RecordsScored(n int)
	RowsSkipped(n int)
	ScoringDuration(seconds float64)
}

// NopRecorder discards all pipeline metrics.
type NopRecorder struct{}

func (NopRecorder) DatasetLoaded(string)    {}
func (NopRecorder) RecordsScored(int)       {}
func (NopRecorder) RowsSkipped(int)         {}
func (NopRecorder) ScoringDuration(float64) {}

// Service is the application service behind the HTTP handlers.
type Service struct {
	store      DatasetStore
	reader     *ingest.Reader
	thresholds analysis.Thresholds
	clock      clockwork.Clock
	recorder   PipelineRecorder
}

// NewService wires the pipeline together.
func NewService(store DatasetStore, reader *ingest.Reader, thresholds analysis.Thresholds, clock clockwork.Clock, recorder PipelineRecorder) *Service {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &Service{
		store:      store,
		reader:     reader,
		thresholds: thresholds,
		clock:      clock,
		recorder:   recorder,
	}
}

// LoadDataset ingests, scores and stores one dataset. Invalid rows are
// skipped and counted; an input with zero valid rows fails with
// domain.ErrEmptyDataset.
func (s *Service) LoadDataset(ctx context.Context, name, source string, src io.Reader) (*domain.Dataset, error) {
	start := s.clock.Now()
	result, err := s.reader.Read(src)
	if err != nil {
		return nil, err
	}
	s.recorder.ScoringDuration(s.clock.Since(start).Seconds())
	s.recorder.DatasetLoaded(source)
	s.recorder.RecordsScored(len(result.Records))
	s.recorder.RowsSkipped(result.Skipped)

	ds := &domain.Dataset{
		ID:        uuid.New(),
		Name:      name,
		Source:    source,
		Records:   result.Records,
		Skipped:   result.Skipped,
		CreatedAt: s.clock.Now(),
	}
	if err := s.store.Save(ctx, ds); err != nil {
		return nil, fmt.Errorf("failed to store dataset: %w", err)
	}

	slog.InfoContext(ctx, "Dataset loaded",
		"dataset_id", ds.ID.String(),
		"name", name,
		"source", source,
		"records", len(ds.Records),
		"skipped", ds.Skipped,
	)
	return ds, nil
}

// LoadBundledDataset loads the embedded sample dataset.
func (s *Service) LoadBundledDataset(ctx context.Context) (*domain.Dataset, error) {
	return s.LoadDataset(ctx, data.BundledName, domain.SourceBundled, bytes.NewReader(data.BundledCSV()))
}

// GetDataset fetches one dataset by ID.
func (s *Service) GetDataset(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	return s.store.Get(ctx, id)
}

// ListDatasets returns all live datasets, newest first.
func (s *Service) ListDatasets(ctx context.Context) ([]*domain.Dataset, error) {
	return s.store.List(ctx)
}

// DeleteDataset discards a dataset.
func (s *Service) DeleteDataset(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

// BuildReport assembles the report over the dataset's filtered view.
// A filter matching no records fails with domain.ErrEmptyDataset.
func (s *Service) BuildReport(ctx context.Context, id uuid.UUID, filter domain.Filter) (*domain.Report, error) {
	ds, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return analysis.AssembleReport(filter.Apply(ds.Records), ds.Skipped, s.thresholds)
}

// QueryRecords returns up to limit filtered records plus the total match
// count. limit <= 0 returns all matches.
func (s *Service) QueryRecords(ctx context.Context, id uuid.UUID, filter domain.Filter, limit int) ([]domain.FeedbackRecord, int, error) {
	ds, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	matched := filter.Apply(ds.Records)
	total := len(matched)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

// WordCloud returns ranked word frequencies for one sentiment over the
// dataset's filtered view.
func (s *Service) WordCloud(ctx context.Context, id uuid.UUID, filter domain.Filter, label domain.SentimentLabel, limit int) ([]analysis.WordCount, error) {
	ds, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return analysis.WordFrequencies(filter.Apply(ds.Records), label, limit), nil
}

// Export renders the filtered report as a downloadable document.
func (s *Service) Export(ctx context.Context, id uuid.UUID, filter domain.Filter, format export.Format) ([]byte, error) {
	ds, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	records := filter.Apply(ds.Records)
	report, err := analysis.AssembleReport(records, ds.Skipped, s.thresholds)
	if err != nil {
		return nil, err
	}

	if format == export.FormatText {
		return export.RenderText(report, records), nil
	}
	return export.RenderCSV(report, records)
}
