// Package update реализует HTTP-обработчик изменения профиля пользователя.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/colddogs/storefront/internal/http/middlewarectx"
	"github.com/colddogs/storefront/internal/http/response"
	"github.com/colddogs/storefront/internal/lib/sl"
	"github.com/colddogs/storefront/internal/services/auth"
)

// Request — входные данные для изменения профиля
type Request struct {
	Username    string         `json:"username" validate:"required"`
	ProfileData map[string]any `json:"profile_data"`
}

// Service описывает интерфейс бизнес-логики изменения профиля.
type Service interface {
	UpdateProfile(ctx context.Context, userID int64, params auth.UpdateParams) error
}

// Handler управляет HTTP-запросами на изменение профиля.
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
// @Summary Изменить профиль пользователя
// @Description Обновляет имя пользователя и произвольные данные профиля.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body Request true "Новые данные профиля"
// @Success 200 {object} response.Message "Профиль обновлен"
// @Failure 400 {object} response.Message "Нет имени или имя занято"
// @Failure 401 {object} response.Message "Токен не предоставлен"
// @Failure 403 {object} response.Message "Невалидный токен"
// @Failure 404 {object} response.Message "Пользователь не найден"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /profile [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.update"

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
		render.JSON(w, r, response.Error("Имя пользователя обязательно"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Имя пользователя обязательно"))
		return
	}

	err := h.service.UpdateProfile(r.Context(), identity.ID, auth.UpdateParams{
		Username:    req.Username,
		ProfileData: req.ProfileData,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			log.Error("username already taken", slog.String("username", req.Username))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Имя пользователя уже занято"))
		case errors.Is(err, auth.ErrUserNotFound):
			log.Error("user not found", slog.Int64("user_id", identity.ID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Пользователь не найден"))
		default:
			log.Error("failed to update profile", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Ошибка обновления профиля"))
		}
		return
	}
	log.Info("profile updated", slog.Int64("user_id", identity.ID))

	render.JSON(w, r, response.OK("Профиль обновлен"))
}
