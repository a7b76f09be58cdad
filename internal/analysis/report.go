package analysis

import (
	"github.com/akarsten/feedbacklens/internal/domain"
)

// AssembleReport merges aggregation output and recommendations into a
// single Report. It fails with domain.ErrEmptyDataset when records is
// empty; otherwise it always succeeds.
func AssembleReport(records []domain.FeedbackRecord, skipped int, t Thresholds) (*domain.Report, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	totals := make(map[domain.SentimentLabel]int, 3)
	sums := make(map[domain.SentimentLabel]float64, 3)
	for _, label := range domain.Labels() {
		totals[label] = 0
	}
	for _, r := range records {
		totals[r.Label]++
		sums[r.Label] += r.CompoundScore
	}

	averages := make(map[domain.SentimentLabel]float64, 3)
	for _, label := range domain.Labels() {
		if totals[label] > 0 {
			averages[label] = sums[label] / float64(totals[label])
		} else {
			averages[label] = 0
		}
	}

	stats := Aggregate(records)
	recommendations := make([]domain.Recommendation, 0, len(stats))
	for _, s := range stats {
		recommendations = append(recommendations, Recommend(s, t))
	}

	return &domain.Report{
		DatasetSize:        len(records),
		SkippedRows:        skipped,
		SentimentTotals:    totals,
		AverageBySentiment: averages,
		DomainStats:        stats,
		Recommendations:    recommendations,
	}, nil
}
