package analysis

import (
	"sort"
	"strings"
	"unicode"

	"github.com/akarsten/feedbacklens/internal/domain"
)

// minWordLength drops single letters and two-letter fragments from the
// word cloud.
const minWordLength = 3

// WordCount is one ranked entry of word-cloud data.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordFrequencies extracts ranked word counts from the comments carrying
// the given label. Tokens are lowercased, stripped of punctuation and
// filtered against the stopword list. Results are ordered by descending
// count, ties broken alphabetically; at most limit entries are returned
// (limit <= 0 means no cap).
func WordFrequencies(records []domain.FeedbackRecord, label domain.SentimentLabel, limit int) []WordCount {
	counts := make(map[string]int)
	for _, r := range records {
		if r.Label != label {
			continue
		}
		for _, word := range extractWords(r.Comment) {
			counts[word]++
		}
	}

	out := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		out = append(out, WordCount{Word: word, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func extractWords(comment string) []string {
	fields := strings.FieldsFunc(strings.ToLower(comment), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		word := strings.ReplaceAll(f, "'", "")
		if len(word) < minWordLength || isStopword(word) || isNumeric(word) {
			continue
		}
		words = append(words, word)
	}
	return words
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
