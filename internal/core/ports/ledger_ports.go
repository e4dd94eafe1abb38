package ports

import (
	"context"

	"github.com/thisorthat/bot/internal/core/domain"
)

// LedgerAppender writes one event row to the external sink. Callers treat
// appends as best effort: the poll service dispatches them asynchronously and
// drops any error after logging it.
type LedgerAppender interface {
	Append(ctx context.Context, row domain.LedgerRow) error
}
