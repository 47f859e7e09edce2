package middlewarectx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/qa-board/internal/http/response"
	"github.com/magabrotheeeer/qa-board/internal/lib/sl"
)

// ValidateIDMiddleware проверяет, что URL-параметр id — положительное целое.
// Некорректный id единообразно дает 400, до обработчиков он не доходит.
func ValidateIDMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.ValidateIDMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			idStr := chi.URLParam(r, "id")
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil || id <= 0 {
				if err != nil {
					log.Error("invalid id in url", sl.Err(err))
				} else {
					log.Error("non-positive id in url", slog.String("id", idStr))
				}
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid id"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
