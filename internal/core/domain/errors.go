package domain

import "errors"

var (
	ErrStalePoll       = errors.New("poll is not live")
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrDuplicateVote   = errors.New("user already voted for this choice")
	ErrNoPollInChannel = errors.New("no poll has run in this channel")
)
