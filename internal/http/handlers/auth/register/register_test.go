package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/colddogs/storefront/internal/models"
	"github.com/colddogs/storefront/internal/services/auth"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, username, email, password string) (*auth.Session, error) {
	args := m.Called(ctx, username, email, password)
	session, _ := args.Get(0).(*auth.Session)
	return session, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	session := &auth.Session{
		Identity: models.Identity{ID: 1, Username: "alice", Email: "alice@example.com"},
		Token:    "tok",
	}

	tests := []struct {
		name           string
		requestBody    any
		mockSession    *auth.Session
		mockErr        error
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "valid registration",
			requestBody:    Request{Username: "alice", Email: "alice@example.com", Password: "secret1"},
			mockSession:    session,
			wantStatusCode: http.StatusOK,
			wantMessage:    "Регистрация успешна",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Все поля обязательны",
		},
		{
			name:           "missing email",
			requestBody:    Request{Username: "alice", Password: "secret1"},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Все поля обязательны",
		},
		{
			name:           "short password",
			requestBody:    Request{Username: "alice", Email: "alice@example.com", Password: "12345"},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Пароль должен содержать минимум 6 символов",
		},
		{
			name:           "duplicate user",
			requestBody:    Request{Username: "alice", Email: "alice@example.com", Password: "secret1"},
			mockErr:        auth.ErrUserExists,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Пользователь с таким email или именем уже существует",
		},
		{
			name:           "backend failure",
			requestBody:    Request{Username: "alice", Email: "alice@example.com", Password: "secret1"},
			mockErr:        errors.New("connection refused"),
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "Ошибка создания пользователя",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			if tt.mockSession != nil || tt.mockErr != nil {
				req := tt.requestBody.(Request)
				serviceMock.On("Register", mock.Anything, req.Username, req.Email, req.Password).
					Return(tt.mockSession, tt.mockErr).Once()
			}
			handler := New(newNoopLogger(), serviceMock)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(bodyBytes))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body["message"])

			if tt.wantStatusCode == http.StatusOK {
				assert.Equal(t, "tok", body["token"])
				user := body["user"].(map[string]any)
				assert.EqualValues(t, 1, user["id"])
				assert.Equal(t, "alice", user["username"])
			} else {
				assert.NotContains(t, body, "token")
			}
			serviceMock.AssertExpectations(t)
		})
	}
}
