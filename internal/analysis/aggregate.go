// Package analysis computes aggregated statistics, recommendations and
// reports over scored feedback records. All computations are full
// recomputes over the input slice; no state is retained between calls.
package analysis

import (
	"sort"

	"github.com/akarsten/feedbacklens/internal/domain"
)

// Aggregate partitions records by domain and computes per-domain sentiment
// counts and mean compound scores. The result is ordered by domain name so
// repeated runs over the same data are identical.
func Aggregate(records []domain.FeedbackRecord) []domain.DomainStats {
	type accumulator struct {
		stats domain.DomainStats
		sum   float64
	}

	byDomain := make(map[string]*accumulator)
	for _, r := range records {
		acc, ok := byDomain[r.Domain]
		if !ok {
			acc = &accumulator{stats: domain.DomainStats{Domain: r.Domain}}
			byDomain[r.Domain] = acc
		}
		switch r.Label {
		case domain.SentimentPositive:
			acc.stats.PositiveCount++
		case domain.SentimentNegative:
			acc.stats.NegativeCount++
		case domain.SentimentNeutral:
			acc.stats.NeutralCount++
		}
		acc.sum += r.CompoundScore
	}

	out := make([]domain.DomainStats, 0, len(byDomain))
	for _, acc := range byDomain {
		if total := acc.stats.Total(); total > 0 {
			acc.stats.AverageScore = acc.sum / float64(total)
		}
		out = append(out, acc.stats)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Domain < out[j].Domain })
	return out
}
