package quizui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"learningplatform/internal/models"
	"learningplatform/internal/quiz"
)

var (
	courseFlag string
	tokenFlag  string
	serverFlag string
)

// Execute runs the quiz CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Course quiz runner for the learning platform",
	}

	cmd.AddCommand(newRunCmd())
	return cmd
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Take a quiz and report the grade",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuiz(courseFlag, tokenFlag, serverFlag)
		},
	}

	cmd.Flags().StringVar(&courseFlag, "course", "", "course to take the quiz for")
	cmd.Flags().StringVar(&tokenFlag, "token", "", "launch token issued by the backend")
	cmd.Flags().StringVar(&serverFlag, "server", "http://localhost:8080", "backend base URL")
	cmd.MarkFlagRequired("course")
	cmd.MarkFlagRequired("token")
	return cmd
}

func runQuiz(courseRaw, token, server string) error {
	course, err := models.ParseCourse(courseRaw)
	if err != nil {
		return fmt.Errorf("unknown course %q", courseRaw)
	}

	session, err := quiz.Start(course)
	if err != nil {
		return err
	}

	reporter := NewReportClient(server, token)
	runner := NewRunner(session, NoopLock{}, reporter, os.Stdin, os.Stdout)

	_, err = runner.Run()
	return err
}
