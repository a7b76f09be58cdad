package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/akarsten/feedbacklens/internal/domain"
	"github.com/akarsten/feedbacklens/internal/export"
	apperrors "github.com/akarsten/feedbacklens/internal/platform/errors"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultRecordsLimit   = 100
	defaultWordCloudLimit = 50
)

func (s *Server) handleReport(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return err
	}
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	report, err := s.app.BuildReport(c.Request().Context(), id, filter)
	if err != nil {
		return mapDatasetError(err, id)
	}

	if err := c.JSON(http.StatusOK, report); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleRecords(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return err
	}
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}
	limit, err := parseLimit(c, defaultRecordsLimit)
	if err != nil {
		return err
	}

	records, total, err := s.app.QueryRecords(c.Request().Context(), id, filter, limit)
	if err != nil {
		return mapDatasetError(err, id)
	}

	response := map[string]any{
		"records": records,
		"total":   total,
		"limit":   limit,
	}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleWordCloud(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return err
	}
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}
	limit, err := parseLimit(c, defaultWordCloudLimit)
	if err != nil {
		return err
	}

	label := domain.SentimentPositive
	if raw := c.QueryParam("sentiment"); raw != "" {
		label, err = domain.ParseSentimentLabel(raw)
		if err != nil {
			return apperrors.Validation("invalid sentiment").WithField("sentiment", raw)
		}
	}

	words, err := s.app.WordCloud(c.Request().Context(), id, filter, label, limit)
	if err != nil {
		return mapDatasetError(err, id)
	}

	response := map[string]any{
		"sentiment": label,
		"words":     words,
	}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleExport(c echo.Context) error {
	id, err := parseDatasetID(c)
	if err != nil {
		return err
	}
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return apperrors.Validation("unsupported export format").WithField("format", c.QueryParam("format"))
	}

	data, err := s.app.Export(c.Request().Context(), id, filter, format)
	if err != nil {
		return mapDatasetError(err, id)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", format.Filename()))
	if err := c.Blob(http.StatusOK, format.ContentType(), data); err != nil {
		return fmt.Errorf("failed to send export response: %w", err)
	}
	return nil
}

// parseFilter builds the record filter from query parameters: sentiments
// and domains take comma-separated values, q is a keyword search term.
func parseFilter(c echo.Context) (domain.Filter, error) {
	var filter domain.Filter
	for _, raw := range splitParam(c.QueryParam("sentiments")) {
		label, err := domain.ParseSentimentLabel(raw)
		if err != nil {
			return domain.Filter{}, apperrors.Validation("invalid sentiment filter").WithField("sentiment", raw)
		}
		filter.Sentiments = append(filter.Sentiments, label)
	}
	filter.Domains = splitParam(c.QueryParam("domains"))
	filter.Keyword = strings.TrimSpace(c.QueryParam("q"))
	return filter, nil
}

func parseLimit(c echo.Context, fallback int) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return fallback, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, apperrors.Validation("limit must be a non-negative integer").WithField("limit", raw)
	}
	return limit, nil
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func mapDatasetError(err error, id uuid.UUID) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrDatasetNotFound):
		return apperrors.NotFound("dataset not found").WithField("dataset_id", id.String())
	case errors.Is(err, domain.ErrEmptyDataset):
		return apperrors.Validation("no records match the requested view").WithField("dataset_id", id.String())
	default:
		return apperrors.Internal("failed to query dataset", err).WithField("dataset_id", id.String())
	}
}
