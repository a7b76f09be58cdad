package ingest

import (
	"strings"
	"testing"

	"github.com/akarsten/feedbacklens/internal/domain"
	"github.com/akarsten/feedbacklens/internal/vader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReader() *Reader {
	return NewReader(vader.New())
}

func readString(t *testing.T, csv string) (*Result, error) {
	t.Helper()
	return newTestReader().Read(strings.NewReader(csv))
}

func TestReadNormalizesLabelCasing(t *testing.T) {
	input := "sentiment,domain,comment\n" +
		"POSITIVE,billing,Great invoicing\n" +
		"Positive,billing,Great invoicing\n" +
		"positive,billing,Great invoicing\n"

	result, err := readString(t, input)
	require.NoError(t, err)
	require.Len(t, result.Records, 3)

	for _, r := range result.Records {
		assert.Equal(t, domain.SentimentPositive, r.Label)
	}
	assert.Zero(t, result.Skipped)
}

func TestReadSkipsInvalidLabel(t *testing.T) {
	input := "sentiment,domain,comment\n" +
		"positive,billing,Great invoicing\n" +
		"meh,billing,No idea\n"

	result, err := readString(t, input)
	require.NoError(t, err)
	assert.Len(t, result.Records, 1)
	assert.Equal(t, 1, result.Skipped)
}

func TestReadSkipsEmptyDomain(t *testing.T) {
	input := "sentiment,domain,comment\n" +
		"positive,,Great invoicing\n" +
		"negative,technical,App crashes\n"

	result, err := readString(t, input)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "technical", result.Records[0].Domain)
	assert.Equal(t, 1, result.Skipped)
}

func TestReadSkipsBlankComment(t *testing.T) {
	input := "sentiment,domain,comment\n" +
		"positive,billing,   \n" +
		"positive,billing,Great invoicing\n"

	result, err := readString(t, input)
	require.NoError(t, err)
	assert.Len(t, result.Records, 1)
	assert.Equal(t, 1, result.Skipped)
}

func TestReadLowercasesDomain(t *testing.T) {
	input := "sentiment,domain,comment\n" +
		"positive, Billing ,Great invoicing\n"

	result, err := readString(t, input)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "billing", result.Records[0].Domain)
}

func TestReadDefaultsDomainWhenColumnMissing(t *testing.T) {
	input := "sentiment,comment\n" +
		"positive,Great invoicing\n"

	result, err := readString(t, input)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "general", result.Records[0].Domain)
}

func TestReadPredictsLabelWhenColumnMissing(t *testing.T) {
	input := "domain,comment\n" +
		"technical,App crashes constantly\n" +
		"accessibility,Great braille export feature\n" +
		"general,The form has three fields\n"

	result, err := readString(t, input)
	require.NoError(t, err)
	require.Len(t, result.Records, 3)

	assert.Equal(t, domain.SentimentNegative, result.Records[0].Label)
	assert.Equal(t, domain.SentimentPositive, result.Records[1].Label)
	assert.Equal(t, domain.SentimentNeutral, result.Records[2].Label)
}

func TestReadScoresEveryRecord(t *testing.T) {
	input := "sentiment,domain,comment\n" +
		"positive,accessibility,Love the rural support\n" +
		"negative,technical,App crashes constantly\n"

	result, err := readString(t, input)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	assert.Positive(t, result.Records[0].CompoundScore)
	assert.Negative(t, result.Records[1].CompoundScore)
}

func TestReadIgnoresExtraColumns(t *testing.T) {
	input := "comment_id,sentiment,domain,comment,timestamp\n" +
		"c-1,positive,billing,Great invoicing,2025-01-01\n"

	result, err := readString(t, input)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Great invoicing", result.Records[0].Comment)
}

func TestReadMissingCommentColumn(t *testing.T) {
	input := "sentiment,domain\npositive,billing\n"

	_, err := readString(t, input)
	assert.ErrorIs(t, err, domain.ErrMissingCommentColumn)
}

func TestReadEmptyInput(t *testing.T) {
	_, err := readString(t, "")
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestReadHeaderOnlyInput(t *testing.T) {
	_, err := readString(t, "sentiment,domain,comment\n")
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestReadAllRowsInvalid(t *testing.T) {
	input := "sentiment,domain,comment\n" +
		"bogus,billing,Great invoicing\n" +
		"positive,,Great invoicing\n"

	_, err := readString(t, input)
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestReadShortRowSkipped(t *testing.T) {
	input := "sentiment,domain,comment\n" +
		"positive,billing\n" +
		"positive,billing,Great invoicing\n"

	result, err := readString(t, input)
	require.NoError(t, err)
	assert.Len(t, result.Records, 1)
	assert.Equal(t, 1, result.Skipped)
}
