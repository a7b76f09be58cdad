package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSentimentLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want SentimentLabel
	}{
		{"positive", SentimentPositive},
		{"Positive", SentimentPositive},
		{"  NEGATIVE  ", SentimentNegative},
		{"neutral", SentimentNeutral},
	}
	for _, tt := range tests {
		got, err := ParseSentimentLabel(tt.raw)
		require.NoError(t, err, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
	}
}

func TestParseSentimentLabelUnknown(t *testing.T) {
	for _, raw := range []string{"", "angry", "pos", "positively"} {
		_, err := ParseSentimentLabel(raw)
		assert.ErrorIs(t, err, ErrInvalidRecord, "raw=%q", raw)
	}
}

func TestLabelsOrder(t *testing.T) {
	assert.Equal(t, []SentimentLabel{SentimentPositive, SentimentNegative, SentimentNeutral}, Labels())
}

func TestDomainStatsTotal(t *testing.T) {
	stats := DomainStats{PositiveCount: 3, NegativeCount: 2, NeutralCount: 1}
	assert.Equal(t, 6, stats.Total())
}
