package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/qa-board/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qa-board/internal/models"
	"github.com/magabrotheeeer/qa-board/internal/storage/repository"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) CreateAnswer(ctx context.Context, questionID int64, answer string, createdBy int64) (*models.Answer, error) {
	args := m.Called(ctx, questionID, answer, createdBy)
	a, _ := args.Get(0).(*models.Answer)
	return a, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	author := int64(7)

	tests := []struct {
		name           string
		urlID          string
		sub            string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное создание ответа",
			urlID:       "1",
			sub:         "7",
			requestBody: Request{Answer: "It only reads the first 72 bytes."},
			setupMock: func(m *MockService) {
				m.On("CreateAnswer", mock.Anything, int64(1), "It only reads the first 72 bytes.", int64(7)).
					Return(&models.Answer{
						ID:         10,
						QuestionID: 1,
						Answer:     "It only reads the first 72 bytes.",
						CreatedBy:  &author,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"question_id":1`,
		},
		{
			name:           "некорректный id в url",
			urlID:          "abc",
			sub:            "7",
			requestBody:    Request{Answer: "text"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id"}`,
		},
		{
			name:           "отсутствует subject в контексте",
			urlID:          "1",
			sub:            "",
			requestBody:    Request{Answer: "text"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid or expired token"}`,
		},
		{
			name:           "некорректный JSON",
			urlID:          "1",
			sub:            "7",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "пустой ответ не проходит валидацию",
			urlID:          "1",
			sub:            "7",
			requestBody:    Request{Answer: ""},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Answer is a required field`,
		},
		{
			name:        "вопрос не найден",
			urlID:       "99",
			sub:         "7",
			requestBody: Request{Answer: "text"},
			setupMock: func(m *MockService) {
				m.On("CreateAnswer", mock.Anything, int64(99), "text", int64(7)).
					Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"question not found"}`,
		},
		{
			name:        "ошибка сервиса",
			urlID:       "1",
			sub:         "7",
			requestBody: Request{Answer: "text"},
			setupMock: func(m *MockService) {
				m.On("CreateAnswer", mock.Anything, int64(1), "text", int64(7)).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create answer"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/questions/"+tt.urlID+"/answers", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := req.Context()
			if tt.sub != "" {
				ctx = context.WithValue(ctx, middlewarectx.UserSub, tt.sub)
				ctx = context.WithValue(ctx, middlewarectx.UserRole, models.RoleUser)
			}
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.urlID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
