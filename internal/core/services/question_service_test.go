package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thisorthat/bot/internal/core/domain"
)

type fakeSource struct {
	rows [][]string
	err  error
}

func (f *fakeSource) Fetch(context.Context) ([][]string, error) {
	return f.rows, f.err
}

func bankRows() [][]string {
	return [][]string{
		{"question_a", "question_b", "category", "is_active"},
		{"tea", "coffee", "food", "TRUE"},
		{"cats", "dogs", "", ""},
		{"summer", "winter", "Seasons", "yes"},
	}
}

func TestReload(t *testing.T) {
	svc := NewQuestionService(&fakeSource{rows: bankRows()}, testLogger())

	assert.Equal(t, 0, svc.Count())
	assert.Equal(t, 3, svc.Reload(context.Background()))
	assert.Equal(t, 3, svc.Count())
}

func TestReloadFetchError(t *testing.T) {
	source := &fakeSource{rows: bankRows()}
	svc := NewQuestionService(source, testLogger())
	require.Equal(t, 3, svc.Reload(context.Background()))

	// A failed reload degrades to an empty bank, it never keeps stale rows.
	source.rows, source.err = nil, errors.New("network down")
	assert.Equal(t, 0, svc.Reload(context.Background()))
	assert.Equal(t, 0, svc.Count())
	_, ok := svc.Pick("")
	assert.False(t, ok)
}

func TestReloadMissingRequiredColumns(t *testing.T) {
	svc := NewQuestionService(&fakeSource{rows: [][]string{
		{"question_a", "category"},
		{"tea", "food"},
	}}, testLogger())

	assert.Equal(t, 0, svc.Reload(context.Background()))
}

func TestReloadEmptySource(t *testing.T) {
	svc := NewQuestionService(&fakeSource{}, testLogger())
	assert.Equal(t, 0, svc.Reload(context.Background()))
}

func TestReloadAllRowsInactive(t *testing.T) {
	svc := NewQuestionService(&fakeSource{rows: [][]string{
		{"question_a", "question_b", "is_active"},
		{"tea", "coffee", "FALSE"},
		{"cats", "dogs", "0"},
	}}, testLogger())

	assert.Equal(t, 0, svc.Reload(context.Background()))
}

func TestPickByCategory(t *testing.T) {
	svc := NewQuestionService(&fakeSource{rows: bankRows()}, testLogger())
	require.Equal(t, 3, svc.Reload(context.Background()))

	// Case-insensitive category match.
	q, ok := svc.Pick("SEASONS")
	require.True(t, ok)
	assert.Equal(t, domain.QuestionPair{OptionA: "summer", OptionB: "winter", Category: "Seasons"}, q)

	_, ok = svc.Pick("sports")
	assert.False(t, ok)
}

func TestPickUnfiltered(t *testing.T) {
	svc := NewQuestionService(&fakeSource{rows: bankRows()}, testLogger())
	require.Equal(t, 3, svc.Reload(context.Background()))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		q, ok := svc.Pick("")
		require.True(t, ok)
		seen[q.OptionA] = true
	}
	assert.Len(t, seen, 3)
}

func TestPickEmptyBank(t *testing.T) {
	svc := NewQuestionService(&fakeSource{}, testLogger())
	_, ok := svc.Pick("")
	assert.False(t, ok)
}
