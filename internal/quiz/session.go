package quiz

import (
	"errors"
	"math/rand"
	"time"

	"learningplatform/internal/models"
)

// Duration is the fixed time budget for a quiz attempt.
const Duration = 10 * time.Minute

var (
	ErrInvalidCourse = errors.New("unknown course")
	ErrNotInProgress = errors.New("quiz is not in progress")
	ErrInvalidOption = errors.New("option index out of range")
)

// State tracks the session lifecycle. There is no transition out of
// StateSubmitted.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateSubmitted
)

// Result is the immutable outcome of a submitted session.
type Result struct {
	Course         models.Course `json:"course"`
	Score          int           `json:"score"`
	TotalQuestions int           `json:"total_questions"`
}

// Session is a single in-memory quiz attempt. It is owned by exactly one
// presentation instance and is not safe for concurrent use; none is needed.
//
// The session never fires its own timer: the presentation layer polls
// RemainingTime and calls Submit itself once the budget is spent.
type Session struct {
	course    models.Course
	questions []Question
	answers   []int // -1 means unanswered
	current   int
	startedAt time.Time
	state     State
	result    *Result
	now       func() time.Time
}

// Start begins a new session for the given course: the course bank is copied,
// uniformly shuffled, and all answer slots start unset. Unknown courses are
// rejected, never defaulted.
func Start(course models.Course) (*Session, error) {
	return StartWithClock(course, time.Now)
}

// StartWithClock is Start with an injectable clock for deterministic tests.
func StartWithClock(course models.Course, now func() time.Time) (*Session, error) {
	questions, ok := Bank(course)
	if !ok {
		return nil, ErrInvalidCourse
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = -1
	}

	return &Session{
		course:    course,
		questions: questions,
		answers:   answers,
		startedAt: now(),
		state:     StateInProgress,
		now:       now,
	}, nil
}

// Course returns the course this session was started for.
func (s *Session) Course() models.Course {
	return s.course
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Len returns the number of questions in the session.
func (s *Session) Len() int {
	return len(s.questions)
}

// CurrentIndex returns the index of the question being shown.
func (s *Session) CurrentIndex() int {
	return s.current
}

// CurrentQuestion returns the question at the current index.
func (s *Session) CurrentQuestion() Question {
	return s.questions[s.current]
}

// Questions returns the shuffled question sequence.
func (s *Session) Questions() []Question {
	return s.questions
}

// AnswerAt returns the recorded option index for question i, or false if that
// slot is still unset.
func (s *Session) AnswerAt(i int) (int, bool) {
	if i < 0 || i >= len(s.answers) || s.answers[i] < 0 {
		return 0, false
	}
	return s.answers[i], true
}

// SelectAnswer records an option for the current question, overwriting any
// prior selection. It returns ErrNotInProgress outside of an active session;
// silently ignoring the call would hide presentation bugs.
func (s *Session) SelectAnswer(option int) error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if option < 0 || option >= len(s.questions[s.current].Options) {
		return ErrInvalidOption
	}
	s.answers[s.current] = option
	return nil
}

// Next advances to the next question. At the last question the call is a
// no-op; there is no wraparound. Selections are recorded directly by
// SelectAnswer, so moving never loses or clears an answer.
func (s *Session) Next() {
	if s.state != StateInProgress {
		return
	}
	if s.current < len(s.questions)-1 {
		s.current++
	}
}

// Prev moves back to the previous question, clamped at the first.
func (s *Session) Prev() {
	if s.state != StateInProgress {
		return
	}
	if s.current > 0 {
		s.current--
	}
}

// Answered returns how many questions have a recorded selection.
func (s *Session) Answered() int {
	n := 0
	for _, a := range s.answers {
		if a >= 0 {
			n++
		}
	}
	return n
}

// RemainingTime returns the time left in the budget, clamped to
// [0, Duration]. Once it reaches zero the caller must force a Submit.
func (s *Session) RemainingTime() time.Duration {
	elapsed := s.now().Sub(s.startedAt)
	remaining := Duration - elapsed
	if remaining < 0 {
		return 0
	}
	if remaining > Duration {
		return Duration
	}
	return remaining
}

// Submit scores the session and moves it to StateSubmitted. A question counts
// toward the score only when its slot is set and matches the correct option.
// Submit is idempotent: repeated calls return the original result.
func (s *Session) Submit() Result {
	if s.state == StateSubmitted {
		return *s.result
	}
	s.state = StateSubmitted

	score := 0
	for i, q := range s.questions {
		if s.answers[i] >= 0 && s.answers[i] == q.Correct {
			score++
		}
	}

	s.result = &Result{
		Course:         s.course,
		Score:          score,
		TotalQuestions: len(s.questions),
	}
	return *s.result
}
