package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
)

func TestValidateIDMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		id             string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "positive integer",
			id:             "42",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "zero",
			id:             "0",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative",
			id:             "-5",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-numeric",
			id:             "abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "float",
			id:             "1.5",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
				nextCalled = true
			})

			handler := ValidateIDMiddleware(logger)(next)

			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}
