package ports

import (
	"context"
	"time"

	"github.com/thisorthat/bot/internal/core/domain"
)

// Announcer posts and later finalizes the public message a poll is bound to.
// Implemented by the Discord adapter.
type Announcer interface {
	Announce(ctx context.Context, channelID string, question domain.QuestionPair, expiresAt time.Time) (messageID string, err error)
	Finalize(ctx context.Context, result domain.PollResult) error
}

type CreatePollInput struct {
	ChannelID string
	Question  domain.QuestionPair
	Duration  time.Duration
}

type CastVoteInput struct {
	PollID   string
	UserID   string
	UserName string
	Choice   domain.Choice
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.Poll, error)
	CastVote(ctx context.Context, input CastVoteInput) (domain.Tally, error)
	Tally(pollID string) (domain.Tally, error)
	LastPoll(channelID string) (domain.PollResult, error)
	LiveCount() int
}
