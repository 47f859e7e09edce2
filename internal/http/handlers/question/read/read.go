// Package read реализует HTTP-обработчик чтения вопроса с ответами.
//
// Чтение публичное. Вопрос без ответов возвращается с пустым списком,
// а не с null.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/qa-board/internal/http/response"
	"github.com/magabrotheeeer/qa-board/internal/lib/sl"
	services "github.com/magabrotheeeer/qa-board/internal/services/question"
	"github.com/magabrotheeeer/qa-board/internal/storage/repository"
)

// Handler обрабатывает запросы чтения вопроса.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения вопроса.
type Service interface {
	GetQuestion(ctx context.Context, id int64) (*services.QuestionWithAnswers, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Чтение вопроса
// @Description Возвращает вопрос вместе со всеми его ответами.
// @Tags Questions
// @Produce  json
// @Param id path int true "Идентификатор вопроса"
// @Success 200 {object} response.Response "Вопрос с ответами"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор"
// @Failure 404 {object} response.ErrorResponse "Вопрос не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /questions/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.question.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	question, err := h.service.GetQuestion(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("question not found", slog.Int64("question_id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("question not found"))
			return
		}
		log.Error("failed to read question", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read question"))
		return
	}

	log.Info("question read", slog.Int64("question_id", id))
	render.JSON(w, r, response.StatusOKWithData(question))
}
