// Package domain holds the core types of the feedback analysis pipeline.
// It has no dependencies on transport, storage or scoring internals.
package domain

import (
	"fmt"
	"strings"
)

// SentimentLabel classifies one feedback comment.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// Labels returns all sentiment labels in canonical order.
func Labels() []SentimentLabel {
	return []SentimentLabel{SentimentPositive, SentimentNegative, SentimentNeutral}
}

// ParseSentimentLabel normalizes a raw label value. Unknown values fail
// with ErrInvalidRecord so callers can skip the row.
func ParseSentimentLabel(raw string) (SentimentLabel, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "positive":
		return SentimentPositive, nil
	case "negative":
		return SentimentNegative, nil
	case "neutral":
		return SentimentNeutral, nil
	default:
		return "", fmt.Errorf("%w: unknown sentiment label %q", ErrInvalidRecord, raw)
	}
}

// FeedbackRecord is one normalized, scored feedback comment.
type FeedbackRecord struct {
	Label         SentimentLabel `json:"sentiment_label"`
	Domain        string         `json:"domain"`
	Comment       string         `json:"comment"`
	CompoundScore float64        `json:"compound_score"`
}

// DomainStats aggregates all records of one service domain.
type DomainStats struct {
	Domain        string  `json:"domain"`
	PositiveCount int     `json:"positive_count"`
	NegativeCount int     `json:"negative_count"`
	NeutralCount  int     `json:"neutral_count"`
	AverageScore  float64 `json:"average_score"`
}

// Total returns the number of records behind the stats.
func (s DomainStats) Total() int {
	return s.PositiveCount + s.NegativeCount + s.NeutralCount
}

// RecommendationCategory classifies a per-domain advisory.
type RecommendationCategory string

const (
	RecommendationStrength RecommendationCategory = "strength"
	RecommendationImprove  RecommendationCategory = "improve"
	RecommendationMonitor  RecommendationCategory = "monitor"
)

// Recommendation is one per-domain advisory derived from DomainStats.
type Recommendation struct {
	Domain   string                 `json:"domain"`
	Category RecommendationCategory `json:"category"`
	Advice   string                 `json:"advice"`
}

// Report is the assembled analysis over one (possibly filtered) dataset view.
type Report struct {
	DatasetSize        int                        `json:"dataset_size"`
	SkippedRows        int                        `json:"skipped_rows"`
	SentimentTotals    map[SentimentLabel]int     `json:"sentiment_totals"`
	AverageBySentiment map[SentimentLabel]float64 `json:"average_by_sentiment"`
	DomainStats        []DomainStats              `json:"domain_stats"`
	Recommendations    []Recommendation           `json:"recommendations"`
}
