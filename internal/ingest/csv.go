// Package ingest turns raw tabular comment data into normalized, scored
// feedback records. Malformed rows are skipped and counted; only a dataset
// with zero valid records fails the whole run.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/akarsten/feedbacklens/internal/domain"
)

// Label prediction cutoffs for datasets that carry no sentiment column:
// scores above/below the band are positive/negative, the band is neutral.
const (
	predictPositiveAbove = 0.05
	predictNegativeBelow = -0.05
)

// defaultDomain is assigned when the input has no domain column.
const defaultDomain = "general"

// Scorer computes a compound polarity score for a comment.
type Scorer interface {
	Compound(text string) float64
}

// Result is the outcome of one ingest run.
type Result struct {
	Records []domain.FeedbackRecord
	Skipped int
}

// Reader ingests CSV data. Required column: "comment". Optional columns:
// "sentiment" (or "sentiment_label") and "domain"; all others are ignored.
type Reader struct {
	scorer Scorer
}

// NewReader creates a Reader that scores comments with the given scorer.
func NewReader(scorer Scorer) *Reader {
	return &Reader{scorer: scorer}
}

// Read parses and normalizes all rows from src. It returns
// domain.ErrMissingCommentColumn when no comment column exists and
// domain.ErrEmptyDataset when no valid record survives.
func (r *Reader) Read(src io.Reader) (*Result, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := locateColumns(header)
	if cols.comment < 0 {
		return nil, domain.ErrMissingCommentColumn
	}

	result := &Result{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Structurally broken row (bad quoting etc.), skip it.
			result.Skipped++
			continue
		}

		record, ok := r.normalizeRow(row, cols)
		if !ok {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, record)
	}

	if len(result.Records) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	return result, nil
}

type columns struct {
	comment   int
	sentiment int
	domain    int
}

// locateColumns finds the relevant columns case-insensitively.
// Missing optional columns are reported as -1.
func locateColumns(header []string) columns {
	cols := columns{comment: -1, sentiment: -1, domain: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "comment", "comment_text":
			cols.comment = i
		case "sentiment", "sentiment_label":
			cols.sentiment = i
		case "domain":
			cols.domain = i
		}
	}
	return cols
}

// normalizeRow validates and canonicalizes one raw row. It returns
// ok=false when the row must be skipped.
func (r *Reader) normalizeRow(row []string, cols columns) (domain.FeedbackRecord, bool) {
	comment := field(row, cols.comment)
	if strings.TrimSpace(comment) == "" {
		return domain.FeedbackRecord{}, false
	}

	category := defaultDomain
	if cols.domain >= 0 {
		category = strings.ToLower(strings.TrimSpace(field(row, cols.domain)))
		if category == "" {
			return domain.FeedbackRecord{}, false
		}
	}

	score := r.scorer.Compound(comment)

	var label domain.SentimentLabel
	if cols.sentiment >= 0 {
		parsed, err := domain.ParseSentimentLabel(field(row, cols.sentiment))
		if err != nil {
			return domain.FeedbackRecord{}, false
		}
		label = parsed
	} else {
		label = predictLabel(score)
	}

	return domain.FeedbackRecord{
		Label:         label,
		Domain:        category,
		Comment:       strings.TrimSpace(comment),
		CompoundScore: score,
	}, true
}

func predictLabel(score float64) domain.SentimentLabel {
	switch {
	case score > predictPositiveAbove:
		return domain.SentimentPositive
	case score < predictNegativeBelow:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
