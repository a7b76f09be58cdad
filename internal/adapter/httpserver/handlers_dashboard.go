package httpserver

import (
	apperrors "github.com/akarsten/feedbacklens/internal/platform/errors"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type dashboardData struct {
	Datasets      []datasetSummary
	ActiveDataset string
}

func (s *Server) handleDashboard(c echo.Context) error {
	datasets, err := s.app.ListDatasets(c.Request().Context())
	if err != nil {
		return apperrors.Internal("failed to list datasets", err)
	}

	data := dashboardData{Datasets: make([]datasetSummary, 0, len(datasets))}
	for _, ds := range datasets {
		data.Datasets = append(data.Datasets, toDatasetSummary(ds))
	}
	if active := s.activeDataset(c); active != uuid.Nil {
		data.ActiveDataset = active.String()
	}

	return s.renderTemplate(c, "dashboard.html", data)
}
