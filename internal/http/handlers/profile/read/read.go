// Package read реализует HTTP-обработчик чтения профиля пользователя.
//
// Handler достает личность из контекста запроса, собирает публичные поля
// учетной записи и историю заказов и возвращает их одним JSON-объектом.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/colddogs/storefront/internal/http/middlewarectx"
	"github.com/colddogs/storefront/internal/http/response"
	"github.com/colddogs/storefront/internal/lib/sl"
	"github.com/colddogs/storefront/internal/services/auth"
)

// Service описывает интерфейс бизнес-логики чтения профиля.
type Service interface {
	Profile(ctx context.Context, userID int64) (*auth.Profile, error)
}

// Handler управляет HTTP-запросами на чтение профиля.
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
// @Summary Получить профиль пользователя
// @Description Возвращает публичные поля учетной записи и историю заказов.
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.Profile "Профиль с заказами"
// @Failure 401 {object} response.Message "Токен не предоставлен"
// @Failure 403 {object} response.Message "Невалидный токен"
// @Failure 404 {object} response.Message "Пользователь не найден"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.read"

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

	profile, err := h.service.Profile(r.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			log.Error("user not found", slog.Int64("user_id", identity.ID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Пользователь не найден"))
			return
		}
		log.Error("failed to load profile", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Ошибка базы данных"))
		return
	}

	render.JSON(w, r, profile)
}
