package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/thisorthat/bot/internal/core/domain"
	"github.com/thisorthat/bot/internal/core/ports"
)

// Handler routes slash commands and button interactions onto the core
// services. It holds no poll state of its own.
type Handler struct {
	polls     ports.PollService
	questions ports.QuestionService
	logger    *slog.Logger
}

func NewHandler(polls ports.PollService, questions ports.QuestionService, logger *slog.Logger) *Handler {
	return &Handler{
		polls:     polls,
		questions: questions,
		logger:    logger,
	}
}

// OnInteraction is the single entry point registered with the gateway.
// Panics are recovered here so one bad interaction cannot take the bot down.
func (h *Handler) OnInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("interaction handler panicked", "panic", r)
			h.notify(s, i, "Something went wrong. Please try again.")
		}
	}()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	}
}

func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	switch data.Name {
	case cmdPollNow:
		h.startPoll(s, i, "")
	case cmdPollActivity:
		h.startPoll(s, i, stringOption(data, "category"))
	case cmdResultsNow:
		h.showResults(s, i)
	case cmdReloadQuestions:
		h.reloadQuestions(s, i)
	}
}

func (h *Handler) startPoll(s *discordgo.Session, i *discordgo.InteractionCreate, category string) {
	question, ok := h.questions.Pick(category)
	if !ok {
		if category != "" {
			h.notify(s, i, fmt.Sprintf("No questions found for category **%s**.", category))
		} else {
			h.notify(s, i, "The question bank is empty. Try `/reload-questions` first.")
		}
		return
	}

	duration := durationOption(i.ApplicationCommandData())
	poll, err := h.polls.Create(context.Background(), ports.CreatePollInput{
		ChannelID: i.ChannelID,
		Question:  question,
		Duration:  duration,
	})
	if err != nil {
		h.logger.Error("failed to create poll", "channel_id", i.ChannelID, "error", err)
		h.notify(s, i, "Could not start the poll. Please try again.")
		return
	}

	h.notify(s, i, fmt.Sprintf("Poll started! It closes <t:%d:R>.", poll.ExpiresAt.Unix()))
}

func (h *Handler) showResults(s *discordgo.Session, i *discordgo.InteractionCreate) {
	result, err := h.polls.LastPoll(i.ChannelID)
	if errors.Is(err, domain.ErrNoPollInChannel) {
		h.notify(s, i, "No poll has run in this channel yet.")
		return
	}
	if err != nil {
		h.logger.Error("failed to read last poll", "channel_id", i.ChannelID, "error", err)
		h.notify(s, i, "Could not read the results. Please try again.")
		return
	}

	h.respond(s, i, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{resultsEmbed(result)},
	})
}

func (h *Handler) reloadQuestions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// The sheet fetch can outlive Discord's three second response window, so
	// acknowledge first and follow up with the count.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		h.logger.Warn("failed to defer interaction response", "error", err)
		return
	}

	count := h.questions.Reload(context.Background())

	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: fmt.Sprintf("Question bank reloaded: **%d** questions.", count),
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		h.logger.Warn("failed to send reload followup", "error", err)
	}
}

func (h *Handler) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	action, pollID, ok := parseCustomID(i.MessageComponentData().CustomID)
	if !ok {
		h.ack(s, i)
		return
	}

	switch action {
	case actionVoteA:
		h.castVote(s, i, pollID, domain.ChoiceA)
	case actionVoteB:
		h.castVote(s, i, pollID, domain.ChoiceB)
	case actionResults:
		tally, err := h.polls.Tally(pollID)
		if err != nil {
			// Stale reference; acknowledge without any state change.
			h.ack(s, i)
			return
		}
		h.notify(s, i, fmt.Sprintf("Current results: 🅰 **%d** (%d%%) — 🅱 **%d** (%d%%), %d votes.",
			tally.CountA, tally.PercentA, tally.CountB, tally.PercentB, tally.Total))
	}
}

func (h *Handler) castVote(s *discordgo.Session, i *discordgo.InteractionCreate, pollID string, choice domain.Choice) {
	user := interactionUser(i)
	if user == nil {
		h.ack(s, i)
		return
	}

	tally, err := h.polls.CastVote(context.Background(), ports.CastVoteInput{
		PollID:   pollID,
		UserID:   user.ID,
		UserName: user.Username,
		Choice:   choice,
	})
	switch {
	case errors.Is(err, domain.ErrStalePoll):
		h.ack(s, i)
	case errors.Is(err, domain.ErrDuplicateVote):
		h.notify(s, i, fmt.Sprintf("You already voted %s on this poll.", choiceLabel(choice)))
	case err != nil:
		h.logger.Error("failed to cast vote", "poll_id", pollID, "user_id", user.ID, "error", err)
		h.notify(s, i, "Could not record your vote. Please try again.")
	default:
		h.notify(s, i, fmt.Sprintf("Vote recorded: %s. Standing: 🅰 %d (%d%%) — 🅱 %d (%d%%).",
			choiceLabel(choice), tally.CountA, tally.PercentA, tally.CountB, tally.PercentB))
	}
}

func (h *Handler) respond(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		h.logger.Warn("failed to respond to interaction", "error", err)
	}
}

// notify sends a private ephemeral notice to the interacting user.
func (h *Handler) notify(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	h.respond(s, i, &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

// ack acknowledges an interaction without producing any visible output.
func (h *Handler) ack(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		h.logger.Warn("failed to acknowledge interaction", "error", err)
	}
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func choiceLabel(c domain.Choice) string {
	if c == domain.ChoiceA {
		return "🅰"
	}
	return "🅱"
}

func stringOption(data discordgo.ApplicationCommandInteractionData, name string) string {
	for _, opt := range data.Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func durationOption(data discordgo.ApplicationCommandInteractionData) time.Duration {
	minutes := int64(defaultDurationMinutes)
	for _, opt := range data.Options {
		if opt.Name == "duration" {
			minutes = opt.IntValue()
		}
	}
	if minutes < minDurationMinutes {
		minutes = minDurationMinutes
	}
	if minutes > maxDurationMinutes {
		minutes = maxDurationMinutes
	}
	return time.Duration(minutes) * time.Minute
}
