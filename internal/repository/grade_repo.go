package repository

import (
	"database/sql"
	"fmt"
	"time"

	"learningplatform/internal/database"
	"learningplatform/internal/models"
)

// GradeRepository handles database operations for the append-only grade store.
// Grades are inserted once per completed quiz and never updated or deleted.
type GradeRepository struct {
	db *database.DB
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *database.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// Record appends a grade row with the current timestamp
func (r *GradeRepository) Record(accountID int64, course models.Course, score, totalQuestions int) (*models.Grade, error) {
	takenAt := time.Now()
	query := `
		INSERT INTO grades (account_id, course, score, total_questions, taken_at)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, accountID, string(course), score, totalQuestions, takenAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record grade: %w", err)
	}

	return &models.Grade{
		ID:             id,
		AccountID:      accountID,
		Course:         course,
		Score:          score,
		TotalQuestions: totalQuestions,
		TakenAt:        takenAt,
	}, nil
}

// LatestByCourse returns the most recent grade for an (account, course) pair,
// or nil if none exists
func (r *GradeRepository) LatestByCourse(accountID int64, course models.Course) (*models.Grade, error) {
	query := `
		SELECT id, account_id, course, score, total_questions, taken_at
		FROM grades
		WHERE account_id = ? AND course = ?
		ORDER BY taken_at DESC, id DESC
		LIMIT 1
	`
	grade := &models.Grade{}
	var courseStr string
	err := r.db.QueryRow(query, accountID, string(course)).Scan(
		&grade.ID,
		&grade.AccountID,
		&courseStr,
		&grade.Score,
		&grade.TotalQuestions,
		&grade.TakenAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest grade: %w", err)
	}

	grade.Course = models.Course(courseStr)
	return grade, nil
}

// HistoryByCourse returns all grades for an (account, course) pair, most
// recent first
func (r *GradeRepository) HistoryByCourse(accountID int64, course models.Course) ([]models.Grade, error) {
	query := `
		SELECT id, account_id, course, score, total_questions, taken_at
		FROM grades
		WHERE account_id = ? AND course = ?
		ORDER BY taken_at DESC, id DESC
	`
	rows, err := r.db.Query(query, accountID, string(course))
	if err != nil {
		return nil, fmt.Errorf("failed to query grades: %w", err)
	}
	defer rows.Close()

	var grades []models.Grade
	for rows.Next() {
		var grade models.Grade
		var courseStr string
		if err := rows.Scan(
			&grade.ID,
			&grade.AccountID,
			&courseStr,
			&grade.Score,
			&grade.TotalQuestions,
			&grade.TakenAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan grade: %w", err)
		}
		grade.Course = models.Course(courseStr)
		grades = append(grades, grade)
	}

	return grades, rows.Err()
}

// CountByAccount returns the number of completed quizzes for an account
func (r *GradeRepository) CountByAccount(accountID int64) (int, error) {
	query := "SELECT COUNT(*) FROM grades WHERE account_id = ?"
	var count int
	if err := r.db.QueryRow(query, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count grades: %w", err)
	}
	return count, nil
}
