package models

import "time"

// Grade is an immutable record of one completed quiz attempt. Rows are only
// ever appended; nothing updates a grade after insert.
type Grade struct {
	ID             int64
	AccountID      int64
	Course         Course
	Score          int
	TotalQuestions int
	TakenAt        time.Time
}

// Percentage returns the score as a percentage for views.
func (g *Grade) Percentage() int {
	if g.TotalQuestions == 0 {
		return 0
	}
	return g.Score * 100 / g.TotalQuestions
}
