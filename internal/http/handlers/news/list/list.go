// Package list реализует HTTP-обработчик списка новостей витрины.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/colddogs/storefront/internal/http/response"
	"github.com/colddogs/storefront/internal/lib/sl"
	"github.com/colddogs/storefront/internal/models"
)

// Response — тело ответа со списком новостей.
type Response struct {
	News []models.News `json:"news"`
}

// Service описывает интерфейс бизнес-логики новостей.
type Service interface {
	List(ctx context.Context) ([]models.News, error)
}

// Handler управляет HTTP-запросами на список новостей.
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
// @Summary Список новостей
// @Description Возвращает новости и анонсы продуктов от новых к старым.
// @Tags News
// @Produce json
// @Success 200 {object} Response "Новости"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /news [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.news.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	items, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list news", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Ошибка базы данных"))
		return
	}

	render.JSON(w, r, Response{News: items})
}
