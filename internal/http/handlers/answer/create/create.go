// Package create реализует HTTP-обработчик добавления ответа к вопросу.
//
// Отвечать может любой аутентифицированный пользователь, в том числе
// автор вопроса, и несколькими ответами подряд. Ответ к несуществующему
// вопросу дает 404.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/qa-board/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qa-board/internal/http/response"
	"github.com/magabrotheeeer/qa-board/internal/lib/sl"
	"github.com/magabrotheeeer/qa-board/internal/models"
	"github.com/magabrotheeeer/qa-board/internal/storage/repository"
)

// Request — структура входных данных для ответа.
type Request struct {
	Answer string `json:"answer" validate:"required,min=1,max=5000"`
}

// Handler обрабатывает запросы на добавление ответа.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики добавления ответа.
type Service interface {
	CreateAnswer(ctx context.Context, questionID int64, answer string, createdBy int64) (*models.Answer, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавление ответа
// @Description Добавляет ответ к вопросу от имени аутентифицированного пользователя.
// @Tags Answers
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path int true "Идентификатор вопроса"
// @Param request body Request true "Текст ответа"
// @Success 201 {object} response.Response "Ответ создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 404 {object} response.ErrorResponse "Вопрос не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /questions/{id}/answers [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.answer.create"

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

	sub, ok := middlewarectx.SubFromContext(r.Context())
	if !ok {
		log.Error("missing subject in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid or expired token"))
		return
	}
	createdBy, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		log.Error("failed to decode subject", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid or expired token"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	answer, err := h.service.CreateAnswer(r.Context(), questionID, req.Answer, createdBy)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("question not found", slog.Int64("question_id", questionID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("question not found"))
			return
		}
		log.Error("failed to create answer", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create answer"))
		return
	}

	log.Info("answer created", slog.Int64("answer_id", answer.ID), slog.Int64("question_id", questionID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(answer))
}
