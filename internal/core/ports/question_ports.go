package ports

import (
	"context"

	"github.com/thisorthat/bot/internal/core/domain"
)

// QuestionSource fetches raw rows, header included, from the external
// tabular source.
type QuestionSource interface {
	Fetch(ctx context.Context) ([][]string, error)
}

type QuestionService interface {
	// Reload replaces the bank wholesale and returns the new count.
	// Failures degrade to an empty bank and a count of 0; they never
	// propagate.
	Reload(ctx context.Context) int
	// Pick returns a uniformly random active pair, filtered by category
	// when non-empty. The second return is false when the pool is empty.
	Pick(category string) (domain.QuestionPair, bool)
	Count() int
}
