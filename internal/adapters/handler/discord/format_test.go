package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thisorthat/bot/internal/core/domain"
)

func sampleResult(ended bool) domain.PollResult {
	return domain.PollResult{
		ID:        "msg-1",
		ChannelID: "channel-1",
		Question:  domain.QuestionPair{OptionA: "tea", OptionB: "coffee", Category: "food"},
		Ended:     ended,
		Tally:     domain.Tally{CountA: 1, CountB: 2, Total: 3, PercentA: 33, PercentB: 67},
	}
}

func TestPollEmbed(t *testing.T) {
	q := domain.QuestionPair{OptionA: "tea", OptionB: "coffee", Category: "food"}
	embed := pollEmbed(q, time.Now().Add(time.Hour))

	assert.Equal(t, "tea vs coffee", embed.Title)
	assert.Contains(t, embed.Description, "tea")
	assert.Contains(t, embed.Description, "coffee")
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "Category: food", embed.Footer.Text)
}

func TestEndedEmbed(t *testing.T) {
	embed := endedEmbed(sampleResult(true))
	assert.Contains(t, embed.Title, "poll ended")
	assert.Contains(t, embed.Description, "33%")
	assert.Contains(t, embed.Description, "67%")
	assert.Equal(t, "3 votes", embed.Footer.Text)
}

func TestResultsEmbedState(t *testing.T) {
	assert.Contains(t, resultsEmbed(sampleResult(false)).Footer.Text, "live")
	assert.Contains(t, resultsEmbed(sampleResult(true)).Footer.Text, "ended")
}

func TestPollButtons(t *testing.T) {
	components := pollButtons("msg-1")
	require.Len(t, components, 1)

	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 3)

	ids := make([]string, 0, 3)
	for _, c := range row.Components {
		button, ok := c.(discordgo.Button)
		require.True(t, ok)
		ids = append(ids, button.CustomID)
	}
	assert.Equal(t, []string{
		customID(actionVoteA, "msg-1"),
		customID(actionVoteB, "msg-1"),
		customID(actionResults, "msg-1"),
	}, ids)
}
