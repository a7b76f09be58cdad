package analysis

import (
	"fmt"

	"github.com/akarsten/feedbacklens/internal/domain"
)

// Thresholds hold the recommendation cutoffs. They are configuration, not
// protocol: any monotonic mapping from average score to category is valid,
// with ties resolving toward the monitor category.
type Thresholds struct {
	// Strength: average score strictly above this, with zero negative
	// comments, marks a domain as a strength.
	Strength float64
	// Improve: average score strictly below this flags a domain for
	// improvement.
	Improve float64
}

// DefaultThresholds returns the standard cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Strength: 0.5, Improve: -0.3}
}

// Valid reports whether the thresholds describe a monotonic mapping.
func (t Thresholds) Valid() bool {
	return t.Strength > t.Improve && t.Strength > 0 && t.Improve < 0
}

// Recommend maps one domain's statistics to an advisory.
func Recommend(stats domain.DomainStats, t Thresholds) domain.Recommendation {
	rec := domain.Recommendation{Domain: stats.Domain}
	switch {
	case stats.AverageScore > t.Strength && stats.NegativeCount == 0:
		rec.Category = domain.RecommendationStrength
		rec.Advice = fmt.Sprintf(
			"Leverage strong positive feedback in %q: expand the features users praise to attract more users.",
			stats.Domain)
	case stats.AverageScore < t.Improve:
		rec.Category = domain.RecommendationImprove
		rec.Advice = fmt.Sprintf(
			"Address negative feedback in %q: improve reliability and clarity to raise user satisfaction.",
			stats.Domain)
	default:
		rec.Category = domain.RecommendationMonitor
		rec.Advice = fmt.Sprintf(
			"Monitor %q: feedback shows no strong signal; enhance standout features and fix minor issues.",
			stats.Domain)
	}
	return rec
}
