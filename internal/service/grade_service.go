package service

import (
	"errors"
	"fmt"
	"log"

	"learningplatform/internal/models"
	"learningplatform/internal/repository"
)

var ErrInvalidGrade = errors.New("invalid grade submission")

// CourseGrade pairs a course with its latest grade for the dashboard; Latest
// is nil when no quiz has been completed yet.
type CourseGrade struct {
	Course models.Course
	Latest *models.Grade
}

// GradeService is the grade store: append-only recording plus the read-only
// projections the dashboard and course views render.
type GradeService struct {
	gradeRepo   *repository.GradeRepository
	accountRepo *repository.AccountRepository
}

// NewGradeService creates a new grade service
func NewGradeService(gradeRepo *repository.GradeRepository, accountRepo *repository.AccountRepository) *GradeService {
	return &GradeService{gradeRepo: gradeRepo, accountRepo: accountRepo}
}

// Record validates and appends one grade for a completed quiz
func (s *GradeService) Record(accountID int64, course models.Course, score, totalQuestions int) (*models.Grade, error) {
	if _, err := models.ParseCourse(string(course)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGrade, err)
	}
	if totalQuestions <= 0 {
		return nil, fmt.Errorf("%w: total_questions must be positive", ErrInvalidGrade)
	}
	if score < 0 || score > totalQuestions {
		return nil, fmt.Errorf("%w: score %d out of range [0, %d]", ErrInvalidGrade, score, totalQuestions)
	}

	grade, err := s.gradeRepo.Record(accountID, course, score, totalQuestions)
	if err != nil {
		return nil, fmt.Errorf("failed to record grade: %w", err)
	}

	// Progress mirrors the completed quiz count. A stale counter is not worth
	// failing the submission over.
	if count, err := s.gradeRepo.CountByAccount(accountID); err == nil {
		if err := s.accountRepo.UpdateProgress(accountID, count); err != nil {
			log.Printf("Failed to update progress for account %d: %v", accountID, err)
		}
	}

	return grade, nil
}

// LatestByCourse returns the most recent grade for a course, or nil
func (s *GradeService) LatestByCourse(accountID int64, course models.Course) (*models.Grade, error) {
	return s.gradeRepo.LatestByCourse(accountID, course)
}

// HistoryByCourse returns every grade for a course, most recent first
func (s *GradeService) HistoryByCourse(accountID int64, course models.Course) ([]models.Grade, error) {
	return s.gradeRepo.HistoryByCourse(accountID, course)
}

// DashboardSummary returns the latest grade for each course in display order
func (s *GradeService) DashboardSummary(accountID int64) ([]CourseGrade, error) {
	summary := make([]CourseGrade, 0, len(models.Courses))
	for _, course := range models.Courses {
		latest, err := s.gradeRepo.LatestByCourse(accountID, course)
		if err != nil {
			return nil, fmt.Errorf("failed to load latest grade for %s: %w", course, err)
		}
		summary = append(summary, CourseGrade{Course: course, Latest: latest})
	}
	return summary, nil
}

// CompletedCount returns how many quizzes the account has completed
func (s *GradeService) CompletedCount(accountID int64) (int, error) {
	return s.gradeRepo.CountByAccount(accountID)
}
