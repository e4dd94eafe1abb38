package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thisorthat/bot/internal/core/domain"
	"github.com/thisorthat/bot/internal/core/ports"
)

type stubPolls struct{ live int }

func (s *stubPolls) Create(context.Context, ports.CreatePollInput) (*domain.Poll, error) {
	return nil, nil
}
func (s *stubPolls) CastVote(context.Context, ports.CastVoteInput) (domain.Tally, error) {
	return domain.Tally{}, nil
}
func (s *stubPolls) Tally(string) (domain.Tally, error)         { return domain.Tally{}, nil }
func (s *stubPolls) LastPoll(string) (domain.PollResult, error) { return domain.PollResult{}, nil }
func (s *stubPolls) LiveCount() int                             { return s.live }

type stubQuestions struct{ count int }

func (s *stubQuestions) Reload(context.Context) int              { return s.count }
func (s *stubQuestions) Pick(string) (domain.QuestionPair, bool) { return domain.QuestionPair{}, false }
func (s *stubQuestions) Count() int                              { return s.count }

func TestHealthz(t *testing.T) {
	server := httptest.NewServer(NewHandler(&stubPolls{}, &stubQuestions{}))
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStatus(t *testing.T) {
	server := httptest.NewServer(NewHandler(&stubPolls{live: 2}, &stubQuestions{count: 7}))
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status statusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, 2, status.LivePolls)
	assert.Equal(t, 7, status.Questions)
	assert.NotEmpty(t, status.StartedAt)
}
