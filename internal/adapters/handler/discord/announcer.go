package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/thisorthat/bot/internal/core/domain"
	"github.com/thisorthat/bot/internal/core/ports"
)

type announcer struct {
	session *discordgo.Session
}

func NewAnnouncer(session *discordgo.Session) ports.Announcer {
	return &announcer{session: session}
}

// Announce posts the poll message, then edits the buttons in: the custom IDs
// embed the message ID, which only exists after the first send.
func (a *announcer) Announce(_ context.Context, channelID string, question domain.QuestionPair, expiresAt time.Time) (string, error) {
	msg, err := a.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{pollEmbed(question, expiresAt)},
	})
	if err != nil {
		return "", fmt.Errorf("post poll announcement: %w", err)
	}

	components := pollButtons(msg.ID)
	_, err = a.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         msg.ID,
		Components: &components,
	})
	if err != nil {
		return "", fmt.Errorf("attach poll buttons: %w", err)
	}
	return msg.ID, nil
}

func (a *announcer) Finalize(_ context.Context, result domain.PollResult) error {
	embeds := []*discordgo.MessageEmbed{endedEmbed(result)}
	components := []discordgo.MessageComponent{}
	_, err := a.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    result.ChannelID,
		ID:         result.ID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		return fmt.Errorf("edit ended poll announcement: %w", err)
	}
	return nil
}
