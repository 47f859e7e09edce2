package qaboard

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	httpSwagger "github.com/swaggo/http-swagger"

	answercreate "github.com/magabrotheeeer/qa-board/internal/http/handlers/answer/create"
	answerlist "github.com/magabrotheeeer/qa-board/internal/http/handlers/answer/list"
	"github.com/magabrotheeeer/qa-board/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/qa-board/internal/http/handlers/auth/register"
	questioncreate "github.com/magabrotheeeer/qa-board/internal/http/handlers/question/create"
	questionlist "github.com/magabrotheeeer/qa-board/internal/http/handlers/question/list"
	questionread "github.com/magabrotheeeer/qa-board/internal/http/handlers/question/read"
	usercreate "github.com/magabrotheeeer/qa-board/internal/http/handlers/user/create"
	userlist "github.com/magabrotheeeer/qa-board/internal/http/handlers/user/list"
	userread "github.com/magabrotheeeer/qa-board/internal/http/handlers/user/read"
	userremove "github.com/magabrotheeeer/qa-board/internal/http/handlers/user/remove"
	userupdate "github.com/magabrotheeeer/qa-board/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/qa-board/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qa-board/internal/lib/jwt"
	"github.com/magabrotheeeer/qa-board/internal/ratelimit"
	authservice "github.com/magabrotheeeer/qa-board/internal/services/auth"
	questionservice "github.com/magabrotheeeer/qa-board/internal/services/question"
	userservice "github.com/magabrotheeeer/qa-board/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, userService *userservice.UserService, questionService *questionservice.QuestionService, jwtMaker jwt.Maker, loginLimiter ratelimit.Limiter) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(middlewarectx.RateLimitMiddleware(logger, rate.NewLimiter(rate.Limit(100), 200)))

	checkID := middlewarectx.ValidateIDMiddleware(logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService, loginLimiter).ServeHTTP)
		r.Post("/users", usercreate.New(logger, userService).ServeHTTP)
		r.Get("/questions", questionlist.New(logger, questionService).ServeHTTP)
		r.With(checkID).Get("/questions/{id}", questionread.New(logger, questionService).ServeHTTP)
		r.With(checkID).Get("/questions/{id}/answers", answerlist.New(logger, questionService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Get("/users", userlist.New(logger, userService).ServeHTTP)
			r.With(checkID).Get("/users/{id}", userread.New(logger, userService).ServeHTTP)
			r.With(checkID).Put("/users/{id}", userupdate.New(logger, userService).ServeHTTP)
			r.With(checkID).Delete("/users/{id}", userremove.New(logger, userService).ServeHTTP)
			r.Post("/questions", questioncreate.New(logger, questionService).ServeHTTP)
			r.With(checkID).Post("/questions/{id}/answers", answercreate.New(logger, questionService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
