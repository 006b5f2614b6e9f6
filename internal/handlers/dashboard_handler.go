package handlers

import (
	"html/template"
	"net/http"

	"learningplatform/internal/models"
	"learningplatform/internal/service"
)

// DashboardHandler serves the logged-in progress views
type DashboardHandler struct {
	gradeService *service.GradeService
	templates    *template.Template
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(gradeService *service.GradeService, templates *template.Template) *DashboardHandler {
	return &DashboardHandler{
		gradeService: gradeService,
		templates:    templates,
	}
}

// Dashboard renders the progress overview: the latest grade per course and
// the overall completion count.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	account := GetAccountFromContext(r.Context())
	if account == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	courses, err := h.gradeService.DashboardSummary(account.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading dashboard summary", err)
		return
	}

	completed, err := h.gradeService.CompletedCount(account.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error counting completed quizzes", err)
		return
	}

	data := DashboardViewData{
		Title:          "Dashboard - Learning Platform",
		Account:        account,
		Courses:        courses,
		CompletedCount: completed,
		Error:          r.URL.Query().Get("error"),
	}

	if err := h.templates.ExecuteTemplate(w, "dashboard.tmpl", data); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error rendering dashboard template", err)
	}
}

// Course renders the grade history for a single course
func (h *DashboardHandler) Course(w http.ResponseWriter, r *http.Request) {
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

	latest, err := h.gradeService.LatestByCourse(account.ID, course)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading latest grade", err)
		return
	}

	history, err := h.gradeService.HistoryByCourse(account.ID, course)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading grade history", err)
		return
	}

	data := CourseViewData{
		Title:   course.Title() + " - Learning Platform",
		Account: account,
		Course:  course,
		Latest:  latest,
		History: history,
	}

	if err := h.templates.ExecuteTemplate(w, "course.tmpl", data); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error rendering course template", err)
	}
}
