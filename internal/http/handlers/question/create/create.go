// Package create реализует HTTP-обработчик создания вопроса.
//
// Создавать вопросы может любой аутентифицированный пользователь.
// Автор берётся из subject токена, а не из тела запроса.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/qa-board/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qa-board/internal/http/response"
	"github.com/magabrotheeeer/qa-board/internal/lib/sl"
	"github.com/magabrotheeeer/qa-board/internal/models"
)

// Request — структура входных данных для создания вопроса.
type Request struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"omitempty,max=5000"`
}

// Handler обрабатывает запросы на создание вопроса.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания вопроса.
type Service interface {
	CreateQuestion(ctx context.Context, title, description string, createdBy int64) (*models.Question, error)
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
// @Summary Создание вопроса
// @Description Создает вопрос от имени аутентифицированного пользователя.
// @Tags Questions
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные вопроса"
// @Success 201 {object} response.Response "Вопрос создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /questions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.question.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	question, err := h.service.CreateQuestion(r.Context(), req.Title, req.Description, createdBy)
	if err != nil {
		log.Error("failed to create question", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create question"))
		return
	}

	log.Info("question created", slog.Int64("question_id", question.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(question))
}
