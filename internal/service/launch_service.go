package service

import (
	"errors"
	"fmt"
	"log"
	"os/exec"

	"learningplatform/internal/models"
	"learningplatform/internal/security"
)

// ErrLaunchFailed is returned when the quiz process could not be started.
var ErrLaunchFailed = errors.New("failed to launch quiz")

// LaunchService spawns a quiz presentation process for an account. The quiz
// runs isolated from the backend; a crash in the quiz UI cannot take down the
// request-handling process. Each launch carries a signed token binding the
// future grade submission to the launching account and course.
type LaunchService struct {
	tokens     *security.LaunchTokenIssuer
	quizBinary string
	serverURL  string
}

// NewLaunchService creates a new launch service
func NewLaunchService(tokens *security.LaunchTokenIssuer, quizBinary, serverURL string) *LaunchService {
	return &LaunchService{
		tokens:     tokens,
		quizBinary: quizBinary,
		serverURL:  serverURL,
	}
}

// Launch starts the quiz process for the given account and course,
// fire-and-forget: the backend does not wait for the quiz to finish. The
// spawned process reports its result over HTTP using the launch token.
func (s *LaunchService) Launch(account *models.Account, course models.Course) error {
	token, err := s.tokens.Issue(account.ID, string(course))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}

	cmd := exec.Command(s.quizBinary, "run",
		"--course", string(course),
		"--server", s.serverURL,
		"--token", token,
	)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}

	// Reap the child when it exits so it doesn't linger as a zombie.
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("Quiz process for account %d (%s) exited: %v", account.ID, course, err)
		}
	}()

	log.Printf("Launched %s quiz for account %d (pid %d)", course, account.ID, cmd.Process.Pid)
	return nil
}
