package create

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

	"github.com/colddogs/storefront/internal/http/middlewarectx"
	"github.com/colddogs/storefront/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Create(ctx context.Context, userID int64, productName, price, period string, quantity int, status string) (*models.Order, error) {
	args := m.Called(ctx, userID, productName, price, period, quantity, status)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func requestWithIdentity(body []byte) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), middlewarectx.UserIdentity,
		models.Identity{ID: 1, Username: "alice"})
	return req.WithContext(ctx)
}

func TestCreateHandler_Success(t *testing.T) {
	serviceMock := new(ServiceMock)
	serviceMock.On("Create", mock.Anything, int64(1),
		"Fish Bot", "₽130", "30 дней", 0, models.OrderStatusCompleted).
		Return(&models.Order{
			ID: 42, UserID: 1, ProductName: "Fish Bot", Price: "₽130",
			Period: "30 дней", Quantity: 1, Status: models.OrderStatusCompleted,
		}, nil).Once()

	handler := New(newNoopLogger(), serviceMock)
	body, _ := json.Marshal(Request{ProductName: "Fish Bot", Price: "₽130", Period: "30 дней"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithIdentity(body))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Заказ создан", resp["message"])

	order := resp["order"].(map[string]any)
	assert.EqualValues(t, 42, order["id"])
	assert.Equal(t, models.OrderStatusCompleted, order["status"])
	serviceMock.AssertExpectations(t)
}

func TestCreateHandler_MissingField(t *testing.T) {
	serviceMock := new(ServiceMock)
	handler := New(newNoopLogger(), serviceMock)
	body, _ := json.Marshal(Request{ProductName: "Fish Bot", Price: "₽130"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithIdentity(body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Все поля заказа обязательны"}`, rec.Body.String())
	serviceMock.AssertNotCalled(t, "Create",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateHandler_MissingIdentity(t *testing.T) {
	handler := New(newNoopLogger(), new(ServiceMock))
	body, _ := json.Marshal(Request{ProductName: "Fish Bot", Price: "₽130", Period: "30 дней"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateHandler_BackendFailure(t *testing.T) {
	serviceMock := new(ServiceMock)
	serviceMock.On("Create", mock.Anything, int64(1),
		"Fish Bot", "₽130", "30 дней", 0, models.OrderStatusCompleted).
		Return(nil, errors.New("connection refused")).Once()

	handler := New(newNoopLogger(), serviceMock)
	body, _ := json.Marshal(Request{ProductName: "Fish Bot", Price: "₽130", Period: "30 дней"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithIdentity(body))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Ошибка создания заказа"}`, rec.Body.String())
}
