// Package list реализует HTTP-обработчик списка подписок пользователя.
//
// Подписки не хранятся отдельно: они выводятся из заказов с конечным
// периодом в днях на момент запроса.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/colddogs/storefront/internal/http/middlewarectx"
	"github.com/colddogs/storefront/internal/http/response"
	"github.com/colddogs/storefront/internal/lib/sl"
	"github.com/colddogs/storefront/internal/models"
	"github.com/colddogs/storefront/internal/services/order"
)

// Response — тело ответа со списком подписок и агрегатами.
type Response struct {
	Subscriptions []models.SubscriptionView `json:"subscriptions"`
	ActiveCount   int                       `json:"active_count"`
	TotalDays     int                       `json:"total_days"`
	TotalSpent    int                       `json:"total_spent"`
}

// Service описывает интерфейс бизнес-логики подписок.
type Service interface {
	Subscriptions(ctx context.Context, userID int64, now time.Time) (*order.SubscriptionList, error)
}

// Handler управляет HTTP-запросами на список подписок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список подписок пользователя
// @Description Возвращает производные представления подписок и агрегаты по ним.
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "Подписки с агрегатами"
// @Failure 401 {object} response.Message "Токен не предоставлен"
// @Failure 403 {object} response.Message "Невалидный токен"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /subscriptions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"

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

	result, err := h.service.Subscriptions(r.Context(), identity.ID, time.Now())
	if err != nil {
		log.Error("failed to derive subscriptions", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Ошибка базы данных"))
		return
	}

	render.JSON(w, r, Response{
		Subscriptions: result.Subscriptions,
		ActiveCount:   result.Stats.ActiveCount,
		TotalDays:     result.Stats.TotalDays,
		TotalSpent:    result.Stats.TotalSpent,
	})
}
