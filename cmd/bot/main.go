package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/thisorthat/bot/internal/adapters/handler/discord"
	opshttp "github.com/thisorthat/bot/internal/adapters/handler/http"
	"github.com/thisorthat/bot/internal/adapters/sheets"
	"github.com/thisorthat/bot/internal/config"
	"github.com/thisorthat/bot/internal/core/ports"
	"github.com/thisorthat/bot/internal/core/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		source ports.QuestionSource = sheets.NopSource{}
		ledger ports.LedgerAppender = sheets.NopLedger{}
	)
	if cfg.SheetsEnabled() {
		svc, err := sheets.NewService(ctx, cfg.CredentialsFile)
		if err != nil {
			logger.Error("sheets client unavailable, running degraded", "error", err)
		} else {
			source = sheets.NewQuestionSource(svc, cfg.SpreadsheetID, cfg.QuestionsTab)
			ledger = sheets.NewLedgerAppender(svc, cfg.SpreadsheetID, cfg.VotesTab)
		}
	} else {
		logger.Warn("sheets integration disabled; question bank stays empty and votes are not logged")
	}

	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		logger.Error("invalid bot session", "error", err)
		os.Exit(1)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	questions := services.NewQuestionService(source, logger)
	polls := services.NewPollService(discord.NewAnnouncer(session), ledger, logger)
	handler := discord.NewHandler(polls, questions, logger)

	session.AddHandler(handler.OnInteraction)
	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		logger.Info("gateway ready", "user", r.User.Username)
	})

	// A failed gateway open is the one deliberate exit: the supervisor is
	// expected to restart the process.
	if err := session.Open(); err != nil {
		logger.Error("failed to open gateway", "error", err)
		os.Exit(1)
	}
	defer session.Close()

	appID := cfg.AppID
	if appID == "" {
		appID = session.State.User.ID
	}
	if err := discord.RegisterCommands(session, appID, cfg.GuildID); err != nil {
		logger.Error("failed to register commands", "error", err)
		os.Exit(1)
	}

	if n := questions.Reload(ctx); n == 0 {
		logger.Warn("starting with an empty question bank")
	}

	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: opshttp.NewHandler(polls, questions)}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Error("ops server failed", "error", err)
		}
	}()

	logger.Info("bot running", "http_addr", cfg.HTTPAddr, "sheets_enabled", cfg.SheetsEnabled())
	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("ops server shutdown failed", "error", err)
	}
}
