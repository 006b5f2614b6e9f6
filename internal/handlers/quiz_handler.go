package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"learningplatform/internal/models"
	"learningplatform/internal/security"
	"learningplatform/internal/service"
)

// QuizHandler launches quiz processes and accepts their results
type QuizHandler struct {
	launchService *service.LaunchService
	gradeService  *service.GradeService
	tokens        *security.LaunchTokenIssuer
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(launchService *service.LaunchService, gradeService *service.GradeService, tokens *security.LaunchTokenIssuer) *QuizHandler {
	return &QuizHandler{
		launchService: launchService,
		gradeService:  gradeService,
		tokens:        tokens,
	}
}

// gradeSubmission is the JSON body posted by the quiz process
type gradeSubmission struct {
	Course         string `json:"course"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
}

// StartQuiz spawns a quiz process for the requested course and sends the
// account back to the dashboard. A launch failure shows up there as an error
// message instead of killing the page.
func (h *QuizHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	account := GetAccountFromContext(r.Context())
	if account == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	course, err := models.ParseCourse(r.PathValue("course"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Unknown course", "", nil)
		return
	}

	if err := h.launchService.Launch(account, course); err != nil {
		log.Printf("Error launching quiz for account %d: %v", account.ID, err)
		msg := url.QueryEscape("Could not start the quiz, please try again")
		http.Redirect(w, r, "/dashboard?error="+msg, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// SubmitGrade records a quiz result. The caller is the quiz process, not the
// browser: it authenticates with the launch token issued at start, so the
// grade is tied to the account and course embedded in the token rather than
// anything in the request body.
func (h *QuizHandler) SubmitGrade(w http.ResponseWriter, r *http.Request) {
	claims, err := h.tokens.Verify(bearerToken(r))
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "Rejected grade submission", err)
		return
	}

	var submission gradeSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body", "Malformed grade submission", err)
		return
	}

	// Token pins the course; a body that disagrees is a forgery attempt.
	if submission.Course != claims.Course {
		respondWithError(w, http.StatusForbidden, "Course mismatch", "", nil)
		return
	}

	grade, err := h.gradeService.Record(claims.AccountID, models.Course(submission.Course), submission.Score, submission.TotalQuestions)
	if err != nil {
		if errors.Is(err, service.ErrInvalidGrade) {
			respondWithError(w, http.StatusBadRequest, "Invalid grade", "", err)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error recording grade", err)
		return
	}

	log.Printf("Recorded grade for account %d: %s %d/%d", claims.AccountID, grade.Course, grade.Score, grade.TotalQuestions)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// bearerToken extracts the token from an Authorization: Bearer header
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimPrefix(auth, prefix)
}
