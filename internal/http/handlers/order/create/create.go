// Package create реализует HTTP-обработчик создания заказа.
//
// Витрина подтверждает покупку без этапа оплаты, поэтому заказ сразу
// создается в конечном статусе.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/colddogs/storefront/internal/http/middlewarectx"
	"github.com/colddogs/storefront/internal/http/response"
	"github.com/colddogs/storefront/internal/lib/sl"
	"github.com/colddogs/storefront/internal/models"
)

// Request — входные данные для создания заказа
type Request struct {
	ProductName string `json:"product_name" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Period      string `json:"period" validate:"required"`
	Quantity    int    `json:"quantity"`
}

// Response — тело успешного ответа создания заказа.
type Response struct {
	Message string       `json:"message"`
	Order   models.Order `json:"order"`
}

// Service описывает интерфейс бизнес-логики создания заказа.
type Service interface {
	Create(ctx context.Context, userID int64, productName, price, period string, quantity int, status string) (*models.Order, error)
}

// Handler управляет HTTP-запросами на создание заказа.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать заказ
// @Description Сохраняет покупку текущего пользователя и возвращает запись заказа.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body Request true "Данные покупки"
// @Success 200 {object} Response "Заказ создан"
// @Failure 400 {object} response.Message "Не заполнены поля заказа"
// @Failure 401 {object} response.Message "Токен не предоставлен"
// @Failure 403 {object} response.Message "Невалидный токен"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /orders [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFromContext(r.Context())
	if !ok {
		log.Error("user identification missing")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Access token required"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Все поля заказа обязательны"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Все поля заказа обязательны"))
		return
	}

	order, err := h.service.Create(r.Context(), identity.ID,
		req.ProductName, req.Price, req.Period, req.Quantity, models.OrderStatusCompleted)
	if err != nil {
		log.Error("failed to create order", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Ошибка создания заказа"))
		return
	}
	log.Info("order created",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", identity.ID))

	render.JSON(w, r, Response{
		Message: "Заказ создан",
		Order:   *order,
	})
}
