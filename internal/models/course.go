package models

import "fmt"

// Course identifies one of the fixed content areas. It is the single course
// identifier used everywhere: routes, question banks, and grade rows.
type Course string

const (
	CoursePython   Course = "python"
	CourseDatabase Course = "database"
	CourseWeb      Course = "web"
)

// Courses lists all recognized courses in display order.
var Courses = []Course{CoursePython, CourseDatabase, CourseWeb}

// ParseCourse validates a raw course identifier. Unknown courses are rejected
// rather than falling back to a default.
func ParseCourse(raw string) (Course, error) {
	switch Course(raw) {
	case CoursePython, CourseDatabase, CourseWeb:
		return Course(raw), nil
	}
	return "", fmt.Errorf("unknown course %q", raw)
}

// Title returns a human-readable course name for views.
func (c Course) Title() string {
	switch c {
	case CoursePython:
		return "Python Programming"
	case CourseDatabase:
		return "Database Fundamentals"
	case CourseWeb:
		return "Web Development"
	}
	return string(c)
}

func (c Course) String() string {
	return string(c)
}
