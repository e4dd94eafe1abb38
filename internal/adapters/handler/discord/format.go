package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/thisorthat/bot/internal/core/domain"
)

const embedColor = 0x5865F2

func pollEmbed(question domain.QuestionPair, expiresAt time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       question.Title(),
		Description: fmt.Sprintf("🅰 **%s**\n🅱 **%s**\n\nPoll closes <t:%d:R>.", question.OptionA, question.OptionB, expiresAt.Unix()),
		Color:       embedColor,
	}
	if question.Category != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Category: " + question.Category}
	}
	return embed
}

func endedEmbed(result domain.PollResult) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       result.Question.Title() + " — poll ended",
		Description: tallyText(result.Question, result.Tally),
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d votes", result.Tally.Total)},
	}
}

func resultsEmbed(result domain.PollResult) *discordgo.MessageEmbed {
	state := "live"
	if result.Ended {
		state = "ended"
	}
	return &discordgo.MessageEmbed{
		Title:       result.Question.Title(),
		Description: tallyText(result.Question, result.Tally),
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d votes · poll %s", result.Tally.Total, state)},
	}
}

func tallyText(question domain.QuestionPair, tally domain.Tally) string {
	return fmt.Sprintf("🅰 %s: **%d** (%d%%)\n🅱 %s: **%d** (%d%%)",
		question.OptionA, tally.CountA, tally.PercentA,
		question.OptionB, tally.CountB, tally.PercentB)
}

func pollButtons(pollID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Vote 🅰",
					Style:    discordgo.PrimaryButton,
					CustomID: customID(actionVoteA, pollID),
				},
				discordgo.Button{
					Label:    "Vote 🅱",
					Style:    discordgo.PrimaryButton,
					CustomID: customID(actionVoteB, pollID),
				},
				discordgo.Button{
					Label:    "Results",
					Style:    discordgo.SecondaryButton,
					CustomID: customID(actionResults, pollID),
				},
			},
		},
	}
}
