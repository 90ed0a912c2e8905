package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BuzzLyutic/todo-auth-api/internal/config"
	"github.com/BuzzLyutic/todo-auth-api/internal/handler"
	"github.com/BuzzLyutic/todo-auth-api/internal/repo"
	"github.com/BuzzLyutic/todo-auth-api/internal/service"
	"github.com/BuzzLyutic/todo-auth-api/internal/token"
	"github.com/BuzzLyutic/todo-auth-api/internal/worker"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	// Подключаем логгер
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключаем БД
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to Database.") // Fatal потому что дальнейшая работа теряет смысл
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Failed to ping the Database.")
	}
	logger.Info("Successfully connected to the Database!")

	// Собираем слои: репозитории -> сервисы -> хэндлеры
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := repo.NewUserRepo(pool)
	taskRepo := repo.NewTaskRepo(pool)

	authService := service.NewAuthService(userRepo, tokens)
	taskService := service.NewTaskService(taskRepo)

	authHandler := handler.NewAuthHandler(authService, logger)
	taskHandler := handler.NewTaskHandler(taskService, logger)

	r := chi.NewRouter() // Создаем роутер
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok"}`)
	})

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Все операции с задачами только с валидным токеном
	r.Route("/tasks", func(r chi.Router) {
		r.Use(handler.RequireAuth(tokens))
		r.Get("/", taskHandler.List)
		r.Post("/", taskHandler.Create)
		r.Get("/stats", taskHandler.Stats)
		r.Put("/{id}", taskHandler.Update)
		r.Delete("/{id}", taskHandler.Delete)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reminderPool *worker.Pool
	if cfg.WorkerCount > 0 {
		reminderPool = worker.NewPool(pool, logger, cfg.WorkerCount, cfg.ReminderWindow)
		reminderPool.Start(ctx)
	}

	srv := http.Server{ // Создаем сервер
		Addr: ":" + cfg.Port,
		Handler: r,
		ReadTimeout: 10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func ()  { // Запуск сервера и обработка ошибок
		logger.Info("Server started at ", zap.String("port", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed: ", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	if reminderPool != nil {
		reminderPool.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10 * time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Shutdown error: ", zap.Error(err))
	}
	logger.Info("Server stopped succsessfully!")
}
