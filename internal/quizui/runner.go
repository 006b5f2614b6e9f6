package quizui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"learningplatform/internal/quiz"
)

// Reporter sends a finished result to the backend
type Reporter interface {
	Submit(result *quiz.Result) error
}

// Runner drives a quiz session through a terminal. Input is a command per
// line; the time budget is checked before every prompt and an exhausted
// budget submits whatever has been answered so far.
type Runner struct {
	session  *quiz.Session
	lock     ScreenLock
	reporter Reporter
	in       *bufio.Scanner
	out      io.Writer
}

// NewRunner creates a runner for one quiz session
func NewRunner(session *quiz.Session, lock ScreenLock, reporter Reporter, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		session:  session,
		lock:     lock,
		reporter: reporter,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

var (
	headerColor   = color.New(color.FgCyan, color.Bold)
	questionColor = color.New(color.FgWhite, color.Bold)
	optionColor   = color.New(color.FgYellow)
	selectedColor = color.New(color.FgGreen)
	warnColor     = color.New(color.FgRed, color.Bold)
	resultColor   = color.New(color.FgGreen, color.Bold)
)

// Run executes the quiz loop until submission or timeout, reports the result,
// and returns it. The screen stays locked for the duration of the loop.
func (r *Runner) Run() (*quiz.Result, error) {
	lockBestEffort(r.lock)
	defer unlockBestEffort(r.lock)

	r.printInstructions()

	for r.session.State() == quiz.StateInProgress {
		if r.session.RemainingTime() <= 0 {
			warnColor.Fprintln(r.out, "\nTime is up! Submitting your answers.")
			break
		}

		r.printQuestion()

		if !r.in.Scan() {
			// Input closed, treat as submission
			break
		}

		// Scan blocks indefinitely; the budget may have run out while
		// waiting, and a late command must not be scored.
		if r.session.RemainingTime() <= 0 {
			warnColor.Fprintln(r.out, "\nTime is up! Submitting your answers.")
			break
		}

		r.handleCommand(strings.TrimSpace(r.in.Text()))
	}

	result := r.session.Submit()
	r.printResult(result)

	if err := r.reporter.Submit(&result); err != nil {
		warnColor.Fprintf(r.out, "Could not report your grade: %v\n", err)
		warnColor.Fprintln(r.out, "Your result was not saved. Please tell your instructor.")
		return &result, err
	}

	resultColor.Fprintln(r.out, "Your grade has been recorded.")
	return &result, nil
}

func (r *Runner) handleCommand(cmd string) {
	switch cmd {
	case "n", "next":
		r.session.Next()
	case "p", "prev":
		r.session.Prev()
	case "s", "submit":
		r.session.Submit()
	case "":
		// Empty line, reprint the question
	default:
		n, err := strconv.Atoi(cmd)
		if err != nil {
			warnColor.Fprintf(r.out, "Unknown command %q\n", cmd)
			return
		}
		// Options are shown 1-based
		if err := r.session.SelectAnswer(n - 1); err != nil {
			warnColor.Fprintf(r.out, "Pick an option between 1 and %d\n", len(r.session.CurrentQuestion().Options))
		}
	}
}

func (r *Runner) printInstructions() {
	headerColor.Fprintf(r.out, "=== %s Quiz ===\n", r.session.Course().Title())
	fmt.Fprintf(r.out, "%d questions, %s time limit.\n", r.session.Len(), quiz.Duration)
	fmt.Fprintln(r.out, "Type an option number to answer, 'n' for next, 'p' for previous, 's' to submit.")
	fmt.Fprintln(r.out)
}

func (r *Runner) printQuestion() {
	remaining := r.session.RemainingTime().Round(time.Second)
	headerColor.Fprintf(r.out, "[Question %d/%d] (%d answered, %s left)\n",
		r.session.CurrentIndex()+1, r.session.Len(), r.session.Answered(), remaining)

	q := r.session.CurrentQuestion()
	questionColor.Fprintln(r.out, q.Prompt)

	selected, answered := r.session.AnswerAt(r.session.CurrentIndex())
	for i, option := range q.Options {
		if answered && i == selected {
			selectedColor.Fprintf(r.out, "  [%d] %s  <- your answer\n", i+1, option)
		} else {
			optionColor.Fprintf(r.out, "  [%d] %s\n", i+1, option)
		}
	}
	fmt.Fprint(r.out, "> ")
}

func (r *Runner) printResult(result quiz.Result) {
	fmt.Fprintln(r.out)
	resultColor.Fprintf(r.out, "Quiz complete! You scored %d out of %d.\n", result.Score, result.TotalQuestions)
}
