package domain

import (
	"math"
	"time"
)

type Choice string

const (
	ChoiceA Choice = "A"
	ChoiceB Choice = "B"
)

func (c Choice) Valid() bool {
	return c == ChoiceA || c == ChoiceB
}

// Poll is a live or retired binary poll. ID is the Discord message ID of the
// announcement the poll is bound to.
type Poll struct {
	ID        string
	ChannelID string
	Question  QuestionPair
	CreatedAt time.Time
	ExpiresAt time.Time
	// Votes maps a user ID to their latest choice. At most one entry per
	// user; a different choice overwrites, the same choice is rejected
	// upstream.
	Votes map[string]Choice
}

// Tally is a point-in-time vote count. PercentB is the complement of the
// rounded PercentA, not independently rounded, so the two always sum to 100
// when Total > 0.
type Tally struct {
	CountA   int
	CountB   int
	Total    int
	PercentA int
	PercentB int
}

func (p *Poll) Tally() Tally {
	var t Tally
	for _, c := range p.Votes {
		if c == ChoiceA {
			t.CountA++
		} else {
			t.CountB++
		}
	}
	t.Total = t.CountA + t.CountB
	if t.Total > 0 {
		t.PercentA = int(math.Round(float64(t.CountA) / float64(t.Total) * 100))
		t.PercentB = 100 - t.PercentA
	}
	return t
}

func (p *Poll) Duration() time.Duration {
	return p.ExpiresAt.Sub(p.CreatedAt)
}

// PollResult is a read-only snapshot of a poll, safe to hand outside the
// lifecycle manager's lock.
type PollResult struct {
	ID        string
	ChannelID string
	Question  QuestionPair
	CreatedAt time.Time
	ExpiresAt time.Time
	Ended     bool
	Tally     Tally
}
