package quiz

import (
	"testing"
	"time"

	"learningplatform/internal/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestStartShufflesPermutationOfBank(t *testing.T) {
	for _, course := range models.Courses {
		t.Run(string(course), func(t *testing.T) {
			session, err := Start(course)
			if err != nil {
				t.Fatalf("Start(%s) error = %v", course, err)
			}

			bank, _ := Bank(course)
			if session.Len() != len(bank) {
				t.Fatalf("session has %d questions, bank has %d", session.Len(), len(bank))
			}

			// Same multiset: every bank prompt appears exactly once.
			seen := make(map[string]int)
			for _, q := range session.Questions() {
				seen[q.Prompt]++
			}
			for _, q := range bank {
				if seen[q.Prompt] != 1 {
					t.Errorf("prompt %q appears %d times, want 1", q.Prompt, seen[q.Prompt])
				}
			}
		})
	}
}

func TestStartRejectsUnknownCourse(t *testing.T) {
	tests := []string{"", "history", "PYTHON", "python "}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			if _, err := Start(models.Course(raw)); err != ErrInvalidCourse {
				t.Errorf("Start(%q) error = %v, want ErrInvalidCourse", raw, err)
			}
		})
	}
}

func TestSelectAnswerRecordsAndOverwrites(t *testing.T) {
	session, err := Start(models.CoursePython)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := session.SelectAnswer(2); err != nil {
		t.Fatalf("SelectAnswer(2) error = %v", err)
	}
	if err := session.SelectAnswer(0); err != nil {
		t.Fatalf("SelectAnswer(0) error = %v", err)
	}

	answer, ok := session.AnswerAt(0)
	if !ok || answer != 0 {
		t.Errorf("AnswerAt(0) = %d, %v; want 0, true", answer, ok)
	}
}

func TestSelectAnswerValidation(t *testing.T) {
	session, err := Start(models.CourseWeb)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := session.SelectAnswer(4); err != ErrInvalidOption {
		t.Errorf("SelectAnswer(4) error = %v, want ErrInvalidOption", err)
	}
	if err := session.SelectAnswer(-1); err != ErrInvalidOption {
		t.Errorf("SelectAnswer(-1) error = %v, want ErrInvalidOption", err)
	}

	session.Submit()
	if err := session.SelectAnswer(0); err != ErrNotInProgress {
		t.Errorf("SelectAnswer after submit error = %v, want ErrNotInProgress", err)
	}
}

func TestNavigationClampsAndKeepsSelections(t *testing.T) {
	session, err := Start(models.CourseDatabase)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// Prev at the first question is a no-op.
	session.Prev()
	if session.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex after Prev at start = %d, want 0", session.CurrentIndex())
	}

	if err := session.SelectAnswer(3); err != nil {
		t.Fatalf("SelectAnswer error = %v", err)
	}

	// Walk to the end and past it.
	for i := 0; i < session.Len()+2; i++ {
		session.Next()
	}
	if session.CurrentIndex() != session.Len()-1 {
		t.Errorf("CurrentIndex after Next past end = %d, want %d", session.CurrentIndex(), session.Len()-1)
	}

	// Walk back and check the first selection survived.
	for session.CurrentIndex() > 0 {
		session.Prev()
	}
	answer, ok := session.AnswerAt(0)
	if !ok || answer != 3 {
		t.Errorf("AnswerAt(0) after navigation = %d, %v; want 3, true", answer, ok)
	}
}

func TestSubmitWithoutAnswersScoresZero(t *testing.T) {
	session, err := Start(models.CoursePython)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// Navigate forward then backward through everything without answering.
	for i := 0; i < session.Len(); i++ {
		session.Next()
	}
	for i := 0; i < session.Len(); i++ {
		session.Prev()
	}

	result := session.Submit()
	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
	if result.TotalQuestions != session.Len() {
		t.Errorf("TotalQuestions = %d, want %d", result.TotalQuestions, session.Len())
	}
}

func TestSubmitAllCorrectScoresTotal(t *testing.T) {
	session, err := Start(models.CourseWeb)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	for i := 0; i < session.Len(); i++ {
		if err := session.SelectAnswer(session.CurrentQuestion().Correct); err != nil {
			t.Fatalf("SelectAnswer error = %v", err)
		}
		session.Next()
	}

	result := session.Submit()
	if result.Score != result.TotalQuestions {
		t.Errorf("Score = %d, want %d", result.Score, result.TotalQuestions)
	}
}

func TestSubmitIsIdempotent(t *testing.T) {
	session, err := Start(models.CourseDatabase)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := session.SelectAnswer(session.CurrentQuestion().Correct); err != nil {
		t.Fatalf("SelectAnswer error = %v", err)
	}

	first := session.Submit()
	second := session.Submit()
	if first != second {
		t.Errorf("repeated Submit returned %+v, want %+v", second, first)
	}
	if session.State() != StateSubmitted {
		t.Errorf("State = %v, want StateSubmitted", session.State())
	}
}

func TestScoreAlwaysWithinBounds(t *testing.T) {
	for _, course := range models.Courses {
		session, err := Start(course)
		if err != nil {
			t.Fatalf("Start(%s) error = %v", course, err)
		}

		// Answer a mix: some correct, some wrong, some skipped.
		for i := 0; i < session.Len(); i++ {
			switch i % 3 {
			case 0:
				session.SelectAnswer(session.CurrentQuestion().Correct)
			case 1:
				wrong := (session.CurrentQuestion().Correct + 1) % 4
				session.SelectAnswer(wrong)
			}
			session.Next()
		}

		result := session.Submit()
		if result.Score < 0 || result.Score > result.TotalQuestions {
			t.Errorf("%s: Score = %d out of bounds [0, %d]", course, result.Score, result.TotalQuestions)
		}
	}
}

func TestRemainingTime(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{
			name: "at start",
			now:  start,
			want: Duration,
		},
		{
			name: "halfway",
			now:  start.Add(5 * time.Minute),
			want: 5 * time.Minute,
		},
		{
			name: "exactly at budget",
			now:  start.Add(Duration),
			want: 0,
		},
		{
			name: "past budget",
			now:  start.Add(Duration + time.Hour),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.now
			session, err := StartWithClock(models.CoursePython, fixedClock(start))
			if err != nil {
				t.Fatalf("StartWithClock() error = %v", err)
			}
			session.now = fixedClock(now)

			if got := session.RemainingTime(); got != tt.want {
				t.Errorf("RemainingTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForcedSubmitAtTimeout(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	session, err := StartWithClock(models.CourseWeb, fixedClock(start))
	if err != nil {
		t.Fatalf("StartWithClock() error = %v", err)
	}

	session.SelectAnswer(session.CurrentQuestion().Correct)
	session.now = fixedClock(start.Add(Duration))

	if session.RemainingTime() != 0 {
		t.Fatalf("RemainingTime() = %v, want 0", session.RemainingTime())
	}

	// The caller polls and forces the submit; answers so far still count.
	result := session.Submit()
	if result.Score != 1 {
		t.Errorf("Score = %d, want 1", result.Score)
	}
	if session.State() != StateSubmitted {
		t.Errorf("State = %v, want StateSubmitted", session.State())
	}
}
