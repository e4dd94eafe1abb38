package services

import (
	"errors"
	"strings"

	"github.com/thisorthat/bot/internal/core/domain"
)

const (
	colQuestionA = "question_a"
	colQuestionB = "question_b"
	colCategory  = "category"
	colActive    = "is_active"
)

// parseQuestions turns raw sheet rows (header first) into typed pairs. Rows
// missing either required cell, or explicitly marked inactive, are skipped.
func parseQuestions(rows [][]string) ([]domain.QuestionPair, error) {
	if len(rows) == 0 {
		return nil, errors.New("source is empty")
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	colA, okA := index[colQuestionA]
	colB, okB := index[colQuestionB]
	if !okA || !okB {
		return nil, errors.New("header must contain question_a and question_b")
	}

	pairs := make([]domain.QuestionPair, 0, len(rows)-1)
	for _, row := range rows[1:] {
		a := cell(row, colA)
		b := cell(row, colB)
		if a == "" || b == "" {
			continue
		}
		if col, ok := index[colActive]; ok && inactive(cell(row, col)) {
			continue
		}
		pair := domain.QuestionPair{OptionA: a, OptionB: b}
		if col, ok := index[colCategory]; ok {
			pair.Category = cell(row, col)
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Anything other than an explicit false-ish token counts as active,
// including a blank cell.
func inactive(v string) bool {
	switch strings.ToLower(v) {
	case "false", "0", "no":
		return true
	}
	return false
}
