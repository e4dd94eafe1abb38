package services

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"sync/atomic"

	"github.com/thisorthat/bot/internal/core/domain"
	"github.com/thisorthat/bot/internal/core/ports"
)

type questionService struct {
	source ports.QuestionSource
	logger *slog.Logger
	bank   atomic.Pointer[[]domain.QuestionPair]
}

func NewQuestionService(source ports.QuestionSource, logger *slog.Logger) ports.QuestionService {
	s := &questionService{
		source: source,
		logger: logger,
	}
	s.bank.Store(&[]domain.QuestionPair{})
	return s
}

func (s *questionService) Reload(ctx context.Context) int {
	rows, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Error("question fetch failed", "error", err)
		s.bank.Store(&[]domain.QuestionPair{})
		return 0
	}

	pairs, err := parseQuestions(rows)
	if err != nil {
		s.logger.Error("question sheet rejected", "error", err)
		s.bank.Store(&[]domain.QuestionPair{})
		return 0
	}

	// Wholesale swap: a reader holding the old slice keeps a consistent
	// view, there is never partial visibility.
	s.bank.Store(&pairs)
	s.logger.Info("question bank reloaded", "count", len(pairs))
	return len(pairs)
}

func (s *questionService) Pick(category string) (domain.QuestionPair, bool) {
	pool := *s.bank.Load()
	if category != "" {
		filtered := make([]domain.QuestionPair, 0, len(pool))
		for _, q := range pool {
			if strings.EqualFold(q.Category, category) {
				filtered = append(filtered, q)
			}
		}
		pool = filtered
	}
	if len(pool) == 0 {
		return domain.QuestionPair{}, false
	}
	return pool[rand.Intn(len(pool))], true
}

func (s *questionService) Count() int {
	return len(*s.bank.Load())
}
