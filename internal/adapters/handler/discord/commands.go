package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const (
	cmdPollNow         = "poll-now"
	cmdPollActivity    = "poll-activity"
	cmdResultsNow      = "results-now"
	cmdReloadQuestions = "reload-questions"
)

const (
	defaultDurationMinutes = 120
	minDurationMinutes     = 1
	maxDurationMinutes     = 1440
)

// Discord requires static choices for enum options, so the category list is
// fixed here rather than derived from the bank.
var categoryChoices = []string{"food", "games", "movies", "music", "sports"}

func commands() []*discordgo.ApplicationCommand {
	minDuration := float64(minDurationMinutes)

	durationOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "duration",
		Description: fmt.Sprintf("Poll duration in minutes (default %d)", defaultDurationMinutes),
		MinValue:    &minDuration,
		MaxValue:    float64(maxDurationMinutes),
	}

	categoryOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "category",
		Description: "Question category",
		Required:    true,
	}
	for _, c := range categoryChoices {
		categoryOption.Choices = append(categoryOption.Choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  c,
			Value: c,
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        cmdPollNow,
			Description: "Start an A vs B poll with a random question",
			Options:     []*discordgo.ApplicationCommandOption{durationOption},
		},
		{
			Name:        cmdPollActivity,
			Description: "Start an A vs B poll from a specific category",
			Options:     []*discordgo.ApplicationCommandOption{categoryOption, durationOption},
		},
		{
			Name:        cmdResultsNow,
			Description: "Show the results of this channel's most recent poll",
		},
		{
			Name:        cmdReloadQuestions,
			Description: "Reload the question bank from the spreadsheet",
		},
	}
}

// RegisterCommands overwrites the guild's slash commands with the bot's set.
func RegisterCommands(session *discordgo.Session, appID, guildID string) error {
	_, err := session.ApplicationCommandBulkOverwrite(appID, guildID, commands())
	if err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	return nil
}
