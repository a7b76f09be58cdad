package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/akarsten/feedbacklens/internal/domain"
	apperrors "github.com/akarsten/feedbacklens/internal/platform/errors"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// datasetSummary is the list/upload response shape. Records stay out of
// it; they are served paginated by the records endpoint.
type datasetSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	Records   int       `json:"records"`
	Skipped   int       `json:"skipped"`
	CreatedAt time.Time `json:"created_at"`
}

func toDatasetSummary(ds *domain.Dataset) datasetSummary {
	return datasetSummary{
		ID:        ds.ID,
		Name:      ds.Name,
		Source:    ds.Source,
		Records:   ds.Size(),
		Skipped:   ds.Skipped,
		CreatedAt: ds.CreatedAt,
	}
}

func (s *Server) handleUploadDataset(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.Validation("missing multipart file field").WithField("field", "file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return apperrors.Internal("failed to open uploaded file", err)
	}
	defer func() { _ = src.Close() }()

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(fileHeader.Filename), filepath.Ext(fileHeader.Filename))
	}
	if name == "" {
		name = "uploaded dataset"
	}

	ds, err := s.app.LoadDataset(c.Request().Context(), name, domain.SourceUpload, src)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCommentColumn):
			return apperrors.Validation("CSV input has no comment column").WithField("name", name)
		case errors.Is(err, domain.ErrEmptyDataset):
			return apperrors.Validation("CSV input contains no valid records").WithField("name", name)
		}
		return apperrors.Internal("failed to load dataset", err).WithField("name", name)
	}

	s.setActiveDataset(c, ds.ID)

	if err := c.JSON(http.StatusCreated, toDatasetSummary(ds)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleListDatasets(c echo.Context) error {
	datasets, err := s.app.ListDatasets(c.Request().Context())
	if err != nil {
		return apperrors.Internal("failed to list datasets", err)
	}

	summaries := make([]datasetSummary, 0, len(datasets))
	for _, ds := range datasets {
		summaries = append(summaries, toDatasetSummary(ds))
	}

	response := map[string]any{"datasets": summaries}
	if active := s.activeDataset(c); active != uuid.Nil {
		response["active_dataset"] = active.String()
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleDeleteDataset(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return err
	}

	if err := s.app.DeleteDataset(c.Request().Context(), id); err != nil {
		return apperrors.Internal("failed to delete dataset", err).WithField("dataset_id", id.String())
	}

	s.clearActiveDataset(c, id)

	if err := c.JSON(http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func parseDatasetID(c echo.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.Validation("invalid dataset ID").WithField("dataset_id", raw)
	}
	return id, nil
}
