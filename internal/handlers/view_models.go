package handlers

import (
	"learningplatform/internal/models"
	"learningplatform/internal/service"
)

type LoginViewData struct {
	Title    string
	Error    string
	Username string
	Success  string
}

type RegisterViewData struct {
	Title    string
	Error    string
	Username string
}

type DashboardViewData struct {
	Title          string
	Account        *models.Account
	Courses        []service.CourseGrade
	CompletedCount int
	Error          string
}

type CourseViewData struct {
	Title   string
	Account *models.Account
	Course  models.Course
	Latest  *models.Grade
	History []models.Grade
}
