package analysis

import (
	"testing"

	"github.com/akarsten/feedbacklens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordFrequenciesCountsAndRanks(t *testing.T) {
	records := []domain.FeedbackRecord{
		record(domain.SentimentNegative, "technical", "The app crashes and crashes again", -0.5),
		record(domain.SentimentNegative, "technical", "Crashes ruined my session", -0.4),
		record(domain.SentimentPositive, "technical", "Crashes are gone, the app is great now", 0.5),
	}

	counts := WordFrequencies(records, domain.SentimentNegative, 0)
	require.NotEmpty(t, counts)

	assert.Equal(t, WordCount{Word: "crashes", Count: 3}, counts[0])

	// Positive record is excluded from the negative cloud.
	for _, wc := range counts {
		assert.NotEqual(t, "great", wc.Word)
	}
}

func TestWordFrequenciesFiltersStopwordsAndShortWords(t *testing.T) {
	records := []domain.FeedbackRecord{
		record(domain.SentimentPositive, "billing", "It is so very good to me", 0.4),
	}

	counts := WordFrequencies(records, domain.SentimentPositive, 0)
	require.Len(t, counts, 1)
	assert.Equal(t, "good", counts[0].Word)
}

func TestWordFrequenciesLimit(t *testing.T) {
	records := []domain.FeedbackRecord{
		record(domain.SentimentNeutral, "general", "alpha bravo charlie delta echo", 0),
	}

	counts := WordFrequencies(records, domain.SentimentNeutral, 2)
	assert.Len(t, counts, 2)
}

func TestWordFrequenciesTieBreaksAlphabetically(t *testing.T) {
	records := []domain.FeedbackRecord{
		record(domain.SentimentNeutral, "general", "zebra apple zebra apple", 0),
	}

	counts := WordFrequencies(records, domain.SentimentNeutral, 0)
	require.Len(t, counts, 2)
	assert.Equal(t, "apple", counts[0].Word)
	assert.Equal(t, "zebra", counts[1].Word)
}

func TestWordFrequenciesEmptyForAbsentLabel(t *testing.T) {
	records := []domain.FeedbackRecord{
		record(domain.SentimentPositive, "billing", "good stuff", 0.4),
	}

	assert.Empty(t, WordFrequencies(records, domain.SentimentNegative, 0))
}
