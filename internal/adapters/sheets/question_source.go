package sheets

import (
	"context"
	"errors"
	"fmt"

	"github.com/thisorthat/bot/internal/core/ports"
	gsheets "google.golang.org/api/sheets/v4"
)

type questionSource struct {
	svc           *gsheets.Service
	spreadsheetID string
	tab           string
}

func NewQuestionSource(svc *gsheets.Service, spreadsheetID, tab string) ports.QuestionSource {
	return &questionSource{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		tab:           tab,
	}
}

// NopSource serves the disabled-integration mode; reloads against it report
// an empty bank.
type NopSource struct{}

func (NopSource) Fetch(context.Context) ([][]string, error) {
	return nil, errors.New("sheets integration disabled")
}

func (s *questionSource) Fetch(ctx context.Context) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, s.tab).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetch question rows: %w", err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, v := range raw {
			row = append(row, fmt.Sprint(v))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
