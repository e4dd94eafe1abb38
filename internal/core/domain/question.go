package domain

// QuestionPair is one "A vs B" matchup loaded from the question sheet.
// Pairs are immutable once loaded; a reload replaces the whole set.
type QuestionPair struct {
	OptionA  string
	OptionB  string
	Category string
}

func (q QuestionPair) Title() string {
	return q.OptionA + " vs " + q.OptionB
}
