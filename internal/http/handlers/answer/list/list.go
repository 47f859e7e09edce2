// Package list реализует HTTP-обработчик списка ответов на вопрос.
//
// Список публичный. Вопрос без ответов и несуществующий вопрос дают
// пустой список.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/qa-board/internal/http/response"
	"github.com/magabrotheeeer/qa-board/internal/lib/sl"
	"github.com/magabrotheeeer/qa-board/internal/models"
)

// Handler обрабатывает запросы списка ответов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка ответов.
type Service interface {
	ListAnswers(ctx context.Context, questionID int64) ([]*models.Answer, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список ответов
// @Description Возвращает все ответы на вопрос в порядке добавления.
// @Tags Answers
// @Produce  json
// @Param id path int true "Идентификатор вопроса"
// @Success 200 {object} response.Response "Список ответов"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /questions/{id}/answers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.answer.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	questionID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	answers, err := h.service.ListAnswers(r.Context(), questionID)
	if err != nil {
		log.Error("failed to list answers", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list answers"))
		return
	}
	if answers == nil {
		answers = []*models.Answer{}
	}

	log.Info("answers listed", slog.Int64("question_id", questionID), slog.Int("count", len(answers)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"answers": answers,
	}))
}
