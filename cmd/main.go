package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"github.com/Ameer1428/ElevateU/internal/config"
	"github.com/Ameer1428/ElevateU/internal/handlers"
	"github.com/Ameer1428/ElevateU/internal/middleware"
	"github.com/Ameer1428/ElevateU/internal/repository"
	"github.com/Ameer1428/ElevateU/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Bootstrap logger so config loading has somewhere to complain.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	db, err := repository.NewDB(&config.Cfg, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Dependency injection
	userRepo := repository.NewGormUserRepository()
	courseRepo := repository.NewGormCourseRepository()
	enrollmentRepo := repository.NewGormEnrollmentRepository()
	progressRepo := repository.NewGormProgressRepository()
	studyUpdateRepo := repository.NewGormStudyUpdateRepository()
	chatSessionRepo := repository.NewGormChatSessionRepository()

	mailer := service.NewMailer(&config.Cfg)

	userService := service.NewUserService(db, userRepo, &config.Cfg)
	courseService := service.NewCourseService(db, courseRepo, enrollmentRepo, progressRepo)
	enrollmentService := service.NewEnrollmentService(db, enrollmentRepo, courseRepo, userRepo, progressRepo)
	progressService := service.NewProgressService(db, progressRepo, courseRepo)
	studyUpdateService := service.NewStudyUpdateService(db, studyUpdateRepo, userRepo, courseRepo, mailer)
	adminService := service.NewAdminService(db, userRepo, courseRepo, enrollmentRepo, progressRepo, enrollmentService, studyUpdateService)
	chatbotService := service.NewChatbotService(db, chatSessionRepo, userRepo, courseRepo, enrollmentRepo, progressRepo, &config.Cfg)

	userHandler := handlers.NewUserHandler(userService, logger)
	courseHandler := handlers.NewCourseHandler(courseService, logger)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger)
	studyUpdateHandler := handlers.NewStudyUpdateHandler(studyUpdateService, logger)
	adminHandler := handlers.NewAdminHandler(adminService, logger)
	chatbotHandler := handlers.NewChatbotHandler(chatbotService, logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(10 * time.Second))

	authMiddleware := middleware.JWTAuthMiddleware(&config.Cfg)
	if !config.Cfg.Auth.Enabled {
		slog.Warn("Auth disabled, using development X-User-ID middleware")
		authMiddleware = func(next http.Handler) http.Handler {
			return middleware.DevUserContextMiddleware(next)
		}
	}
	adminGate := middleware.RequireAdmin(userService, &config.Cfg)

	r.Route("/api", func(r chi.Router) {
		// Catalog reads are public.
		r.Get("/courses", courseHandler.ListCourses)
		r.Get("/courses/{courseID}", courseHandler.GetCourse)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/users", userHandler.SyncUser)
			r.Get("/users/{userID}", userHandler.GetUser)

			r.Post("/enrollments", enrollmentHandler.Enroll)
			r.Get("/enrollments/user/{userID}", enrollmentHandler.ListUserEnrollments)

			r.Get("/progress/user/{userID}/course/{courseID}", progressHandler.GetProgress)
			r.Post("/progress", progressHandler.UpsertProgress)

			r.Post("/study-updates", studyUpdateHandler.CreateStudyUpdate)
			r.Get("/study-updates/user/{userID}", studyUpdateHandler.ListUserStudyUpdates)

			r.Post("/chatbot/message", chatbotHandler.SendMessage)
			r.Get("/chatbot/sessions/{sessionID}/history", chatbotHandler.GetSessionHistory)
			r.Get("/chatbot/user/{userID}/sessions", chatbotHandler.ListUserSessions)

			// Admin routes
			r.Group(func(r chi.Router) {
				r.Use(adminGate)

				r.Put("/users/{userID}", userHandler.UpdateUser)

				r.Post("/courses", courseHandler.CreateCourse)
				r.Put("/courses/{courseID}", courseHandler.UpdateCourse)
				r.Delete("/courses/{courseID}", courseHandler.DeleteCourse)

				r.Put("/study-updates/{updateID}/verify", studyUpdateHandler.VerifyStudyUpdate)

				r.Get("/admin/stats", adminHandler.GetStats)
				r.Get("/admin/students", adminHandler.ListStudents)
				r.Get("/admin/student/{studentID}", adminHandler.GetStudentDetail)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := sqlDB.PingContext(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
