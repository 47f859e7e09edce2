package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/qa-board/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qa-board/internal/models"
	"github.com/magabrotheeeer/qa-board/internal/storage/repository"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	storedUser := &models.User{
		ID:        7,
		Fullname:  "Ada Lovelace",
		Email:     "ada@example.com",
		Role:      models.RoleUser,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		urlID          string
		sub            string
		role           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
		emailVisible   bool
	}{
		{
			name:  "владелец видит свой email",
			urlID: "7",
			sub:   "7",
			role:  models.RoleUser,
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, int64(7)).Return(storedUser, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"fullname":"Ada Lovelace"`,
			emailVisible:   true,
		},
		{
			name:  "администратор видит чужой email",
			urlID: "7",
			sub:   "1",
			role:  models.RoleAdmin,
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, int64(7)).Return(storedUser, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"fullname":"Ada Lovelace"`,
			emailVisible:   true,
		},
		{
			name:  "посторонний пользователь не видит email",
			urlID: "7",
			sub:   "42",
			role:  models.RoleUser,
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, int64(7)).Return(storedUser, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"fullname":"Ada Lovelace"`,
			emailVisible:   false,
		},
		{
			name:  "ведущие нули в sub не ломают сравнение",
			urlID: "7",
			sub:   "07",
			role:  models.RoleUser,
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, int64(7)).Return(storedUser, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"fullname":"Ada Lovelace"`,
			emailVisible:   true,
		},
		{
			name:           "некорректный id в url",
			urlID:          "abc",
			sub:            "7",
			role:           models.RoleUser,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id"}`,
		},
		{
			name:  "пользователь не найден",
			urlID: "99",
			sub:   "7",
			role:  models.RoleUser,
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
		{
			name:  "ошибка сервиса",
			urlID: "7",
			sub:   "7",
			role:  models.RoleUser,
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, int64(7)).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not read user"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.urlID, nil)

			ctx := context.WithValue(req.Context(), middlewarectx.UserSub, tt.sub)
			ctx = context.WithValue(ctx, middlewarectx.UserRole, tt.role)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.urlID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			if tt.expectedStatus == http.StatusOK {
				if tt.emailVisible {
					assert.Contains(t, w.Body.String(), `"email":"ada@example.com"`)
				} else {
					assert.NotContains(t, w.Body.String(), "email")
				}
			}

			mockService.AssertExpectations(t)
		})
	}
}
