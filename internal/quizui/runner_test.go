package quizui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"learningplatform/internal/models"
	"learningplatform/internal/quiz"
)

type fakeReporter struct {
	got *quiz.Result
	err error
}

func (f *fakeReporter) Submit(result *quiz.Result) error {
	f.got = result
	return f.err
}

type recordingLock struct {
	locked   bool
	unlocked bool
}

func (l *recordingLock) Lock() error   { l.locked = true; return nil }
func (l *recordingLock) Unlock() error { l.unlocked = true; return nil }

func TestRunnerSubmitsAndReports(t *testing.T) {
	session, err := quiz.Start(models.CoursePython)
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}

	// Answer the first question, then submit
	input := strings.NewReader("1\ns\n")
	var out bytes.Buffer
	reporter := &fakeReporter{}
	lock := &recordingLock{}

	runner := NewRunner(session, lock, reporter, input, &out)
	result, err := runner.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.TotalQuestions != session.Len() {
		t.Errorf("expected total %d, got %d", session.Len(), result.TotalQuestions)
	}
	if reporter.got == nil {
		t.Fatal("expected result to be reported")
	}
	if reporter.got.Course != models.CoursePython {
		t.Errorf("expected course python, got %s", reporter.got.Course)
	}

	if !lock.locked || !lock.unlocked {
		t.Error("expected screen to be locked for the run and unlocked after")
	}
	if !strings.Contains(out.String(), "Quiz complete") {
		t.Errorf("expected completion message, got output: %q", out.String())
	}
}

func TestRunnerSubmitsOnClosedInput(t *testing.T) {
	session, err := quiz.Start(models.CourseWeb)
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}

	var out bytes.Buffer
	reporter := &fakeReporter{}

	runner := NewRunner(session, NoopLock{}, reporter, strings.NewReader(""), &out)
	result, err := runner.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Score != 0 {
		t.Errorf("expected score 0 with no answers, got %d", result.Score)
	}
	if session.State() != quiz.StateSubmitted {
		t.Errorf("expected session submitted, got state %v", session.State())
	}
}

func TestRunnerSurfacesReportFailure(t *testing.T) {
	session, err := quiz.Start(models.CourseDatabase)
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}

	var out bytes.Buffer
	reporter := &fakeReporter{err: errors.New("connection refused")}

	runner := NewRunner(session, NoopLock{}, reporter, strings.NewReader("s\n"), &out)
	if _, err := runner.Run(); err == nil {
		t.Fatal("expected reporting error to surface")
	}

	if !strings.Contains(out.String(), "not saved") {
		t.Errorf("expected failure notice in output, got: %q", out.String())
	}
}

// slowInput advances a fake clock before each read, simulating input that
// arrives while the runner is blocked waiting on the terminal.
type slowInput struct {
	r       io.Reader
	advance func()
}

func (s *slowInput) Read(p []byte) (int, error) {
	s.advance()
	return s.r.Read(p)
}

func TestRunnerDiscardsAnswerTypedAfterDeadline(t *testing.T) {
	current := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return current }

	session, err := quiz.StartWithClock(models.CoursePython, clock)
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}

	// The correct option for the first question, delivered only after the
	// clock has moved past the budget
	correct := session.CurrentQuestion().Correct + 1
	input := &slowInput{
		r: strings.NewReader(fmt.Sprintf("%d\n", correct)),
		advance: func() {
			current = current.Add(quiz.Duration + time.Minute)
		},
	}

	var out bytes.Buffer
	reporter := &fakeReporter{}

	runner := NewRunner(session, NoopLock{}, reporter, input, &out)
	result, err := runner.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Score != 0 {
		t.Errorf("answer entered after the deadline was scored: got %d, want 0", result.Score)
	}
	if _, answered := session.AnswerAt(0); answered {
		t.Error("expected no answer recorded for question 0")
	}
	if session.State() != quiz.StateSubmitted {
		t.Errorf("expected session submitted, got state %v", session.State())
	}
	if !strings.Contains(out.String(), "Time is up") {
		t.Errorf("expected timeout notice in output, got: %q", out.String())
	}
}

func TestRunnerIgnoresInvalidCommands(t *testing.T) {
	session, err := quiz.Start(models.CoursePython)
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}

	// Garbage, out-of-range option, then a valid answer and submit
	input := strings.NewReader("bogus\n9\n2\nsubmit\n")
	var out bytes.Buffer
	reporter := &fakeReporter{}

	runner := NewRunner(session, NoopLock{}, reporter, input, &out)
	if _, err := runner.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if selected, ok := session.AnswerAt(0); !ok || selected != 1 {
		t.Errorf("expected question 0 answered with option index 1, got %d (answered=%v)", selected, ok)
	}
}
