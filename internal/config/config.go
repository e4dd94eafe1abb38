package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	BotToken string `env:"DISCORD_BOT_TOKEN"`
	AppID    string `env:"DISCORD_APP_ID"`
	GuildID  string `env:"DISCORD_GUILD_ID"`

	SpreadsheetID   string `env:"SHEET_SPREADSHEET_ID"`
	QuestionsTab    string `env:"SHEET_QUESTIONS_TAB" envDefault:"questions"`
	VotesTab        string `env:"SHEET_VOTES_TAB" envDefault:"votes"`
	SheetsDisabled  bool   `env:"SHEETS_DISABLED" envDefault:"false"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	HTTPAddr string `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
}

// Load reads .env if present, then the environment. Only the bot token is
// hard-required; missing sheet settings degrade the integration instead of
// failing startup.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.BotToken == "" {
		return Config{}, errors.New("DISCORD_BOT_TOKEN is required")
	}
	return cfg, nil
}

// SheetsEnabled reports whether the spreadsheet integration has everything it
// needs to run.
func (c Config) SheetsEnabled() bool {
	return !c.SheetsDisabled && c.SpreadsheetID != "" && c.CredentialsFile != ""
}
