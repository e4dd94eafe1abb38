package sheets

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/thisorthat/bot/internal/core/domain"
	"github.com/thisorthat/bot/internal/core/ports"
	gsheets "google.golang.org/api/sheets/v4"
)

type ledgerAppender struct {
	svc           *gsheets.Service
	spreadsheetID string
	tab           string
}

func NewLedgerAppender(svc *gsheets.Service, spreadsheetID, tab string) ports.LedgerAppender {
	return &ledgerAppender{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		tab:           tab,
	}
}

func (l *ledgerAppender) Append(ctx context.Context, row domain.LedgerRow) error {
	vr := &gsheets.ValueRange{Values: [][]interface{}{rowValues(row)}}
	_, err := l.svc.Spreadsheets.Values.
		Append(l.spreadsheetID, l.tab, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append ledger row: %w", err)
	}
	return nil
}

func rowValues(row domain.LedgerRow) []interface{} {
	hours := strconv.FormatFloat(row.EndsAt.Sub(row.StartedAt).Hours(), 'f', 1, 64)
	return []interface{}{
		row.EventID,
		string(row.Event),
		row.Timestamp.UTC().Format(time.RFC3339),
		row.PollID,
		row.ChannelID,
		row.Question,
		row.UserID,
		row.UserName,
		string(row.Choice),
		row.Tally.CountA,
		row.Tally.CountB,
		fmt.Sprintf("%d%%", row.Tally.PercentA),
		fmt.Sprintf("%d%%", row.Tally.PercentB),
		row.Tally.Total,
		row.StartedAt.UTC().Format(time.RFC3339),
		row.EndsAt.UTC().Format(time.RFC3339),
		hours,
	}
}

// NopLedger serves the disabled-integration mode: appends succeed and go
// nowhere.
type NopLedger struct{}

func (NopLedger) Append(context.Context, domain.LedgerRow) error { return nil }
