package update

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/colddogs/storefront/internal/http/middlewarectx"
	"github.com/colddogs/storefront/internal/models"
	"github.com/colddogs/storefront/internal/services/auth"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) UpdateProfile(ctx context.Context, userID int64, params auth.UpdateParams) error {
	return m.Called(ctx, userID, params).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func requestWithIdentity(body []byte) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), middlewarectx.UserIdentity, models.Identity{ID: 1})
	return req.WithContext(ctx)
}

func TestUpdateHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "valid update",
			requestBody:    Request{Username: "alice_new", ProfileData: map[string]any{"bio": "hi"}},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantMessage:    "Профиль обновлен",
		},
		{
			name:           "missing username",
			requestBody:    Request{ProfileData: map[string]any{"bio": "hi"}},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Имя пользователя обязательно",
		},
		{
			name:           "username taken",
			requestBody:    Request{Username: "taken"},
			mockErr:        auth.ErrUserExists,
			mockCalled:     true,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Имя пользователя уже занято",
		},
		{
			name:           "unknown user",
			requestBody:    Request{Username: "ghost"},
			mockErr:        auth.ErrUserNotFound,
			mockCalled:     true,
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "Пользователь не найден",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			if tt.mockCalled {
				req := tt.requestBody.(Request)
				serviceMock.On("UpdateProfile", mock.Anything, int64(1), auth.UpdateParams{
					Username:    req.Username,
					ProfileData: req.ProfileData,
				}).Return(tt.mockErr).Once()
			}
			handler := New(newNoopLogger(), serviceMock)

			body, err := json.Marshal(tt.requestBody)
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, requestWithIdentity(body))

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp["message"])
			serviceMock.AssertExpectations(t)
		})
	}
}
