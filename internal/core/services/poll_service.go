package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thisorthat/bot/internal/core/domain"
	"github.com/thisorthat/bot/internal/core/ports"
)

const ledgerTimeout = 30 * time.Second

type pollService struct {
	announcer ports.Announcer
	ledger    ports.LedgerAppender
	logger    *slog.Logger

	// mu guards both maps and every poll's vote map. Vote mutation and the
	// tally read that follows it happen inside one critical section, so two
	// concurrent votes can never observe a half-applied state.
	mu   sync.Mutex
	live map[string]*domain.Poll
	last map[string]*domain.Poll
}

func NewPollService(announcer ports.Announcer, ledger ports.LedgerAppender, logger *slog.Logger) ports.PollService {
	return &pollService{
		announcer: announcer,
		ledger:    ledger,
		logger:    logger,
		live:      make(map[string]*domain.Poll),
		last:      make(map[string]*domain.Poll),
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	if input.Duration <= 0 {
		return nil, errors.New("duration must be positive")
	}

	now := time.Now()
	expiresAt := now.Add(input.Duration)

	messageID, err := s.announcer.Announce(ctx, input.ChannelID, input.Question, expiresAt)
	if err != nil {
		return nil, err
	}

	poll := &domain.Poll{
		ID:        messageID,
		ChannelID: input.ChannelID,
		Question:  input.Question,
		CreatedAt: now,
		ExpiresAt: expiresAt,
		Votes:     make(map[string]domain.Choice),
	}

	s.mu.Lock()
	s.live[poll.ID] = poll
	// The last-poll pointer moves immediately; a still-live prior poll in
	// this channel keeps running until its own timer fires.
	s.last[poll.ChannelID] = poll
	s.mu.Unlock()

	time.AfterFunc(input.Duration, func() { s.expire(poll.ID) })

	s.logger.Info("poll created",
		"poll_id", poll.ID,
		"channel_id", poll.ChannelID,
		"question", poll.Question.Title(),
		"expires_at", expiresAt,
	)

	s.appendAsync(domain.LedgerRow{
		EventID:   uuid.NewString(),
		Event:     domain.LedgerPollCreated,
		Timestamp: now,
		PollID:    poll.ID,
		ChannelID: poll.ChannelID,
		Question:  poll.Question.Title(),
		StartedAt: poll.CreatedAt,
		EndsAt:    poll.ExpiresAt,
	})

	return poll, nil
}

func (s *pollService) CastVote(ctx context.Context, input ports.CastVoteInput) (domain.Tally, error) {
	if !input.Choice.Valid() {
		return domain.Tally{}, domain.ErrInvalidChoice
	}

	s.mu.Lock()
	poll, ok := s.live[input.PollID]
	if !ok {
		s.mu.Unlock()
		return domain.Tally{}, domain.ErrStalePoll
	}
	if prev, voted := poll.Votes[input.UserID]; voted && prev == input.Choice {
		s.mu.Unlock()
		return domain.Tally{}, domain.ErrDuplicateVote
	}
	poll.Votes[input.UserID] = input.Choice
	tally := poll.Tally()
	row := domain.LedgerRow{
		EventID:   uuid.NewString(),
		Event:     domain.LedgerVote,
		Timestamp: time.Now(),
		PollID:    poll.ID,
		ChannelID: poll.ChannelID,
		Question:  poll.Question.Title(),
		UserID:    input.UserID,
		UserName:  input.UserName,
		Choice:    input.Choice,
		Tally:     tally,
		StartedAt: poll.CreatedAt,
		EndsAt:    poll.ExpiresAt,
	}
	s.mu.Unlock()

	s.appendAsync(row)

	return tally, nil
}

func (s *pollService) Tally(pollID string) (domain.Tally, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if poll, ok := s.live[pollID]; ok {
		return poll.Tally(), nil
	}
	// A retired poll stays readable while it is still some channel's most
	// recent poll.
	for _, poll := range s.last {
		if poll.ID == pollID {
			return poll.Tally(), nil
		}
	}
	return domain.Tally{}, domain.ErrStalePoll
}

func (s *pollService) LastPoll(channelID string) (domain.PollResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	poll, ok := s.last[channelID]
	if !ok {
		return domain.PollResult{}, domain.ErrNoPollInChannel
	}
	_, isLive := s.live[poll.ID]
	return snapshot(poll, !isLive), nil
}

func (s *pollService) LiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

// expire retires a poll. It only ever runs from the poll's one-shot timer;
// the live-set membership check makes it a no-op on any repeat fire.
func (s *pollService) expire(pollID string) {
	s.mu.Lock()
	poll, ok := s.live[pollID]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.live, pollID)
	result := snapshot(poll, true)
	s.mu.Unlock()

	s.logger.Info("poll retired",
		"poll_id", result.ID,
		"channel_id", result.ChannelID,
		"total_votes", result.Tally.Total,
	)

	ctx, cancel := context.WithTimeout(context.Background(), ledgerTimeout)
	defer cancel()
	if err := s.announcer.Finalize(ctx, result); err != nil {
		s.logger.Warn("failed to finalize poll announcement", "poll_id", result.ID, "error", err)
	}
}

func (s *pollService) appendAsync(row domain.LedgerRow) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ledgerTimeout)
		defer cancel()
		if err := s.ledger.Append(ctx, row); err != nil {
			s.logger.Warn("ledger append failed",
				"event", string(row.Event),
				"poll_id", row.PollID,
				"error", err,
			)
		}
	}()
}

func snapshot(poll *domain.Poll, ended bool) domain.PollResult {
	return domain.PollResult{
		ID:        poll.ID,
		ChannelID: poll.ChannelID,
		Question:  poll.Question,
		CreatedAt: poll.CreatedAt,
		ExpiresAt: poll.ExpiresAt,
		Ended:     ended,
		Tally:     poll.Tally(),
	}
}
