package domain

import "time"

type LedgerEvent string

const (
	LedgerPollCreated LedgerEvent = "poll_created"
	LedgerVote        LedgerEvent = "vote"
)

// LedgerRow is one denormalized event for the external vote sheet. Rows are
// write-once; the bot never reads them back.
type LedgerRow struct {
	EventID   string
	Event     LedgerEvent
	Timestamp time.Time
	PollID    string
	ChannelID string
	Question  string
	UserID    string
	UserName  string
	Choice    Choice
	Tally     Tally
	StartedAt time.Time
	EndsAt    time.Time
}
