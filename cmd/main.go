// cmd/main.go
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

	"go_5_tadoku_read/internal/config"
	"go_5_tadoku_read/internal/handlers"
	"go_5_tadoku_read/internal/llm"
	"go_5_tadoku_read/internal/middleware"
	"go_5_tadoku_read/internal/model"
	"go_5_tadoku_read/internal/repository"
	"go_5_tadoku_read/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
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
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.Cfg.App.Name))

	// Database (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
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

	// スキーママイグレーション
	if err := db.AutoMigrate(
		&model.Learner{},
		&model.Course{},
		&model.DictionaryWord{},
		&model.GeneratedText{},
		&model.WordAppearance{},
		&model.Exercise{},
		&model.ExerciseProgress{},
		&model.LearnerVerificationToken{},
		&model.PasswordResetToken{},
	); err != nil {
		slog.Error("Error running database migration", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	learnerRepo := repository.NewGormLearnerRepository()
	courseRepo := repository.NewGormCourseRepository()
	dictRepo := repository.NewGormDictionaryRepository()
	textRepo := repository.NewGormTextRepository()
	appearanceRepo := repository.NewGormAppearanceRepository()
	exerciseRepo := repository.NewGormExerciseRepository()
	progressRepo := repository.NewGormExerciseProgressRepository()
	tokenRepo := repository.NewGormTokenRepository()

	llmClient := llm.NewOpenAIClient(&config.Cfg, logger)
	mailer := service.NewMailer(&config.Cfg)

	authService := service.NewAuthService(db, learnerRepo, tokenRepo, mailer, &config.Cfg)
	courseService := service.NewCourseService(db, courseRepo)
	dictionaryService := service.NewDictionaryService(db, learnerRepo, courseRepo, dictRepo, appearanceRepo, llmClient)
	exerciseService := service.NewExerciseService(db, textRepo, courseRepo, learnerRepo, exerciseRepo, progressRepo, llmClient)
	textService := service.NewTextService(db, courseRepo, textRepo)
	generationService := service.NewGenerationService(db, learnerRepo, courseRepo, dictRepo, textRepo, appearanceRepo, exerciseService, llmClient, &config.Cfg)

	authHandler := handlers.NewAuthHandler(authService)
	courseHandler := handlers.NewCourseHandler(courseService)
	dictionaryHandler := handlers.NewDictionaryHandler(dictionaryService)
	textHandler := handlers.NewTextHandler(generationService, textService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService)

	// ゲスト生成のレート制限 (IPごと、1時間の固定ウィンドウ)
	guestLimiter := middleware.NewFixedWindowLimiter(config.Cfg.RateLimit.GuestPerHour, time.Hour)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	// テキスト生成は生成APIを複数回呼ぶため、全体タイムアウトは長めに取る
	r.Use(chimiddleware.Timeout(180 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Get("/verify", authHandler.VerifyAccount)
			r.Post("/login", authHandler.Login)
			r.Post("/forgot-password", authHandler.RequestPasswordReset)
			r.Post("/reset-password", authHandler.ResetPassword)
		})

		// ゲスト生成 (認証不要、レート制限あり)
		r.Group(func(r chi.Router) {
			r.Use(middleware.GuestRateLimitMiddleware(guestLimiter))
			r.Post("/guest/texts", textHandler.PostGuestText)
		})

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Get("/auth/me", authHandler.GetMe)

			r.Route("/courses", func(r chi.Router) {
				r.Post("/", courseHandler.PostCourse)
				r.Get("/", courseHandler.GetCourses)
				r.Get("/{course_id}", courseHandler.GetCourse)
				r.Delete("/{course_id}", courseHandler.DeleteCourse)

				r.Post("/{course_id}/texts", textHandler.PostText)
				r.Get("/{course_id}/texts", textHandler.GetTexts)

				r.Post("/{course_id}/words", dictionaryHandler.LookupWord)
				r.Get("/{course_id}/words", dictionaryHandler.GetWords)
			})

			r.Route("/texts/{text_id}", func(r chi.Router) {
				r.Get("/", textHandler.GetText)
				r.Get("/image", textHandler.GetTextImage)
				r.Get("/exercises", exerciseHandler.GetExercises)
				r.Post("/exercises", exerciseHandler.PostExercises)
			})

			r.Route("/words/{word_id}", func(r chi.Router) {
				r.Patch("/", dictionaryHandler.PatchWordMastery)
				r.Delete("/", dictionaryHandler.DeleteWord)
			})

			r.Post("/exercises/{exercise_id}/answer", exerciseHandler.PostAnswer)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
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
