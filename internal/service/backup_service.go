package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"learningplatform/internal/database"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version      string          `json:"version"`
	ExportedAt   time.Time       `json:"exported_at"`
	DatabaseType string          `json:"database_type"`
	Accounts     []AccountBackup `json:"accounts"`
	Grades       []GradeBackup   `json:"grades"`
}

// AccountBackup represents an account record for backup
type AccountBackup struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Progress     int       `json:"progress"`
	CreatedAt    time.Time `json:"created_at"`
}

// GradeBackup represents a grade record for backup
type GradeBackup struct {
	ID             int64     `json:"id"`
	AccountID      int64     `json:"account_id"`
	Course         string    `json:"course"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	TakenAt        time.Time `json:"taken_at"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	backup := &BackupData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		DatabaseType: "universal",
	}

	if err := s.exportAccounts(backup); err != nil {
		return fmt.Errorf("failed to export accounts: %w", err)
	}

	if err := s.exportGrades(backup); err != nil {
		return fmt.Errorf("failed to export grades: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Database exported successfully to %s", outputPath)
	log.Printf("Exported: %d accounts, %d grades", len(backup.Accounts), len(backup.Grades))

	return nil
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup reader
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	// Accounts before grades, grades reference accounts.
	if err := s.importAccounts(backup.Accounts); err != nil {
		return fmt.Errorf("failed to import accounts: %w", err)
	}

	if err := s.importGrades(backup.Grades); err != nil {
		return fmt.Errorf("failed to import grades: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) exportAccounts(backup *BackupData) error {
	query := "SELECT id, username, password_hash, progress, created_at FROM accounts ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a AccountBackup
		if err := rows.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Progress, &a.CreatedAt); err != nil {
			return err
		}
		backup.Accounts = append(backup.Accounts, a)
	}
	return rows.Err()
}

func (s *BackupService) exportGrades(backup *BackupData) error {
	query := "SELECT id, account_id, course, score, total_questions, taken_at FROM grades ORDER BY id"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var g GradeBackup
		if err := rows.Scan(&g.ID, &g.AccountID, &g.Course, &g.Score, &g.TotalQuestions, &g.TakenAt); err != nil {
			return err
		}
		backup.Grades = append(backup.Grades, g)
	}
	return rows.Err()
}

func (s *BackupService) importAccounts(accounts []AccountBackup) error {
	for _, a := range accounts {
		var exists int
		err := s.db.QueryRow("SELECT COUNT(*) FROM accounts WHERE id = ?", a.ID).Scan(&exists)
		if err != nil {
			return err
		}
		if exists > 0 {
			log.Printf("Skipping existing account: %s (id %d)", a.Username, a.ID)
			continue
		}

		query := "INSERT INTO accounts (id, username, password_hash, progress, created_at) VALUES (?, ?, ?, ?, ?)"
		if _, err := s.db.Exec(query, a.ID, a.Username, a.PasswordHash, a.Progress, a.CreatedAt); err != nil {
			return fmt.Errorf("failed to import account %s: %w", a.Username, err)
		}
	}
	log.Printf("Imported %d accounts", len(accounts))
	return nil
}

func (s *BackupService) importGrades(grades []GradeBackup) error {
	for _, g := range grades {
		var exists int
		err := s.db.QueryRow("SELECT COUNT(*) FROM grades WHERE id = ?", g.ID).Scan(&exists)
		if err != nil {
			return err
		}
		if exists > 0 {
			continue
		}

		query := "INSERT INTO grades (id, account_id, course, score, total_questions, taken_at) VALUES (?, ?, ?, ?, ?, ?)"
		if _, err := s.db.Exec(query, g.ID, g.AccountID, g.Course, g.Score, g.TotalQuestions, g.TakenAt); err != nil {
			return fmt.Errorf("failed to import grade for account %d: %w", g.AccountID, err)
		}
	}
	log.Printf("Imported %d grades", len(grades))
	return nil
}
