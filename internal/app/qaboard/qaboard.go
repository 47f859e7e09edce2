// Package qaboard собирает приложение вопросов и ответов: хранилище,
// миграции, лимитер попыток входа, сервисы и HTTP-сервер.
package qaboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/qa-board/internal/config"
	"github.com/magabrotheeeer/qa-board/internal/lib/jwt"
	"github.com/magabrotheeeer/qa-board/internal/migrations"
	"github.com/magabrotheeeer/qa-board/internal/ratelimit"
	authservice "github.com/magabrotheeeer/qa-board/internal/services/auth"
	questionservice "github.com/magabrotheeeer/qa-board/internal/services/question"
	userservice "github.com/magabrotheeeer/qa-board/internal/services/user"
	"github.com/magabrotheeeer/qa-board/internal/storage/repository"
)

// App хранит собранные зависимости и HTTP-сервер приложения.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	db      *repository.Storage
	limiter *ratelimit.RedisLimiter
}

// New собирает приложение из конфигурации: подключается к Postgres и
// Redis, применяет миграции и строит маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	limiter, err := ratelimit.InitServer(ctx, cfg.RedisConnection, cfg.MaxAttempts, cfg.Window)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	userService := userservice.NewUserService(db)
	questionService := questionservice.NewQuestionService(db)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, userService, questionService, jwtMaker, limiter)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		db:      db,
		limiter: limiter,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.limiter.Close(); cerr != nil {
			a.logger.Error("failed to close redis client", slog.Any("err", cerr))
		}
		if cerr := a.db.DB.Close(); cerr != nil {
			a.logger.Error("failed to close database", slog.Any("err", cerr))
		}
		return err
	}
}
