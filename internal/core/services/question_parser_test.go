package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thisorthat/bot/internal/core/domain"
)

func TestParseQuestionsHeaderCaseInsensitive(t *testing.T) {
	pairs, err := parseQuestions([][]string{
		{" Question_A ", "QUESTION_B"},
		{"tea", "coffee"},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.QuestionPair{{OptionA: "tea", OptionB: "coffee"}}, pairs)
}

func TestParseQuestionsSkipsIncompleteRows(t *testing.T) {
	pairs, err := parseQuestions([][]string{
		{"question_a", "question_b"},
		{"tea", ""},
		{"", "dogs"},
		{"short"},
		{"summer", "winter"},
	})
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "summer", pairs[0].OptionA)
}

func TestParseQuestionsActiveFlag(t *testing.T) {
	pairs, err := parseQuestions([][]string{
		{"question_a", "question_b", "is_active"},
		{"tea", "coffee", "FALSE"},
		{"cats", "dogs", "no"},
		{"rain", "snow", "0"},
		{"summer", "winter", ""},
		{"sweet", "salty", "anything-else"},
	})
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "summer", pairs[0].OptionA)
	assert.Equal(t, "sweet", pairs[1].OptionA)
}

func TestParseQuestionsRejectsBadHeader(t *testing.T) {
	_, err := parseQuestions([][]string{{"option_one", "option_two"}})
	assert.Error(t, err)

	_, err = parseQuestions(nil)
	assert.Error(t, err)
}
