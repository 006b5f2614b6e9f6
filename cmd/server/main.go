package main

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"learningplatform/internal/config"
	"learningplatform/internal/database"
	"learningplatform/internal/handlers"
	"learningplatform/internal/quiz"
	"learningplatform/internal/repository"
	"learningplatform/internal/security"
	"learningplatform/internal/service"
)

func main() {
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	templates, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	gradeRepo := repository.NewGradeRepository(db)

	// Initialize services
	authService := service.NewAuthService(accountRepo, cfg.SessionDuration)
	gradeService := service.NewGradeService(gradeRepo, accountRepo)

	// Launch tokens outlive the quiz time budget by a grace period so a
	// submission right at the deadline still authenticates.
	tokens := security.NewLaunchTokenIssuer(cfg.LaunchSecret, quiz.Duration+5*time.Minute)
	launchService := service.NewLaunchService(tokens, cfg.QuizBinary, cfg.BaseURL)

	// Initialize handlers
	middleware := handlers.NewMiddleware(authService)
	loginLimiter := security.NewRateLimiter(10, time.Minute)
	authHandler := handlers.NewAuthHandler(authService, templates)
	dashboardHandler := handlers.NewDashboardHandler(gradeService, templates)
	quizHandler := handlers.NewQuizHandler(launchService, gradeService, tokens)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /", authHandler.Home)
	mux.HandleFunc("GET /login", authHandler.ShowLogin)
	mux.HandleFunc("POST /login", handlers.RateLimit(loginLimiter, authHandler.Login))
	mux.HandleFunc("GET /register", authHandler.ShowRegister)
	mux.HandleFunc("POST /register", handlers.RateLimit(loginLimiter, authHandler.Register))
	mux.HandleFunc("POST /logout", authHandler.Logout)

	// Protected routes
	mux.HandleFunc("GET /dashboard", middleware.RequireAuth(dashboardHandler.Dashboard))
	mux.HandleFunc("GET /course/{course}", middleware.RequireAuth(dashboardHandler.Course))
	mux.HandleFunc("GET /start_quiz/{course}", middleware.RequireAuth(quizHandler.StartQuiz))

	// Grade submission authenticates with a launch token, not a session
	mux.HandleFunc("POST /submit_grade", quizHandler.SubmitGrade)

	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background session cleanup
	go cleanupExpiredSessions(authService)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// loadTemplates loads all template files
func loadTemplates(templatesPath string) (*template.Template, error) {
	baseTemplate := filepath.Join(templatesPath, "base.tmpl")

	patterns := []string{
		filepath.Join(templatesPath, "auth/*.tmpl"),
		filepath.Join(templatesPath, "dashboard/*.tmpl"),
	}

	var files []string
	files = append(files, baseTemplate)

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}

	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
		"percentage": func(score, total int) float64 {
			if total == 0 {
				return 0
			}
			return float64(score) / float64(total) * 100
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return tmpl, nil
}

// cleanupExpiredSessions periodically removes expired sessions
func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
		} else {
			log.Println("Expired sessions cleaned up")
		}
	}
}
