package domain

import "strings"

// Filter selects a subset of a dataset's records. The zero value matches
// every record. All set criteria must match (AND semantics).
type Filter struct {
	Sentiments []SentimentLabel
	Domains    []string
	Keyword    string
}

// IsZero reports whether the filter has no criteria set.
func (f Filter) IsZero() bool {
	return len(f.Sentiments) == 0 && len(f.Domains) == 0 && f.Keyword == ""
}

// Matches reports whether a record passes all set criteria.
// Keyword matching is a case-insensitive substring match on the comment.
func (f Filter) Matches(r FeedbackRecord) bool {
	if len(f.Sentiments) > 0 && !containsLabel(f.Sentiments, r.Label) {
		return false
	}
	if len(f.Domains) > 0 && !containsFold(f.Domains, r.Domain) {
		return false
	}
	if f.Keyword != "" && !strings.Contains(strings.ToLower(r.Comment), strings.ToLower(f.Keyword)) {
		return false
	}
	return true
}

// Apply returns the records matching the filter, preserving input order.
// The input slice is never modified.
func (f Filter) Apply(records []FeedbackRecord) []FeedbackRecord {
	if f.IsZero() {
		return records
	}
	out := make([]FeedbackRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func containsLabel(labels []SentimentLabel, l SentimentLabel) bool {
	for _, candidate := range labels {
		if candidate == l {
			return true
		}
	}
	return false
}

func containsFold(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}
