package discord

import "strings"

const (
	actionVoteA   = "vote_a"
	actionVoteB   = "vote_b"
	actionResults = "results"
)

// Button custom IDs embed the poll (message) ID so an interaction is always
// scoped to one specific poll instance.
func customID(action, pollID string) string {
	return "poll:" + action + ":" + pollID
}

func parseCustomID(id string) (action, pollID string, ok bool) {
	parts := strings.SplitN(id, ":", 3)
	if len(parts) != 3 || parts[0] != "poll" || parts[2] == "" {
		return "", "", false
	}
	switch parts[1] {
	case actionVoteA, actionVoteB, actionResults:
		return parts[1], parts[2], true
	}
	return "", "", false
}
