// Package export renders reports into downloadable documents.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/akarsten/feedbacklens/internal/domain"
)

// Format identifies a supported export format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatText Format = "txt"
)

// ParseFormat validates a raw format string, defaulting to CSV when empty.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "csv":
		return FormatCSV, nil
	case "txt", "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", raw)
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatText {
		return "text/plain; charset=utf-8"
	}
	return "text/csv; charset=utf-8"
}

// Filename returns the download filename for the format.
func (f Format) Filename() string {
	return "feedback_insights." + string(f)
}

// RenderCSV writes a summary block followed by the record table, the same
// shape as the dashboard's downloadable insights report.
func RenderCSV(report *domain.Report, records []domain.FeedbackRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Metric", "Value"},
		{"Total Comments", strconv.Itoa(report.DatasetSize)},
		{"Skipped Rows", strconv.Itoa(report.SkippedRows)},
	}
	for _, label := range domain.Labels() {
		count := report.SentimentTotals[label]
		rows = append(rows, []string{
			titleLabel(label) + " Comments",
			fmt.Sprintf("%d (%.1f%%)", count, percentage(count, report.DatasetSize)),
		})
	}
	rows = append(rows, []string{})
	rows = append(rows, []string{"comment", "domain", "sentiment_label", "compound_score"})
	for _, r := range records {
		rows = append(rows, []string{
			r.Comment,
			r.Domain,
			string(r.Label),
			strconv.FormatFloat(r.CompoundScore, 'f', 4, 64),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write CSV export: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderText produces a human-readable plain text report.
func RenderText(report *domain.Report, records []domain.FeedbackRecord) []byte {
	var b strings.Builder

	b.WriteString("Feedback Insights Report\n")
	b.WriteString("========================\n\n")
	fmt.Fprintf(&b, "Total comments: %d (skipped rows: %d)\n", report.DatasetSize, report.SkippedRows)
	for _, label := range domain.Labels() {
		count := report.SentimentTotals[label]
		fmt.Fprintf(&b, "%s: %d (%.1f%%)\n", titleLabel(label), count, percentage(count, report.DatasetSize))
	}

	b.WriteString("\nDomain breakdown\n----------------\n")
	for _, stats := range report.DomainStats {
		fmt.Fprintf(&b, "%s: %d positive, %d negative, %d neutral, average score %.4f\n",
			stats.Domain, stats.PositiveCount, stats.NegativeCount, stats.NeutralCount, stats.AverageScore)
	}

	b.WriteString("\nRecommendations\n---------------\n")
	for _, rec := range report.Recommendations {
		fmt.Fprintf(&b, "[%s] %s\n", rec.Category, rec.Advice)
	}

	b.WriteString("\nComments\n--------\n")
	for _, r := range records {
		fmt.Fprintf(&b, "(%s, %s, %.4f) %s\n", r.Label, r.Domain, r.CompoundScore, r.Comment)
	}

	return []byte(b.String())
}

func titleLabel(label domain.SentimentLabel) string {
	s := string(label)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
