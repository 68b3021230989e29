// Package login реализует HTTP-обработчик входа пользователя.
package login

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/colddogs/storefront/internal/http/response"
	"github.com/colddogs/storefront/internal/lib/sl"
	"github.com/colddogs/storefront/internal/models"
	"github.com/colddogs/storefront/internal/services/auth"
)

// Request — входные данные для входа
type Request struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response — тело успешного ответа входа.
type Response struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    models.Identity `json:"user"`
}

// Handler управляет HTTP-запросами на вход.
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
// @Summary Войти в учетную запись
// @Description Проверяет email и пароль, выдает токен сессии.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Учетные данные"
// @Success 200 {object} Response "Вход выполнен"
// @Failure 400 {object} response.Message "Неполные или неверные учетные данные"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Email и пароль обязательны"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Email и пароль обязательны"))
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Error("invalid credentials")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Неверный email или пароль"))
			return
		}
		log.Error("login failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Внутренняя ошибка сервера"))
		return
	}
	log.Info("user logged in", slog.Int64("user_id", session.Identity.ID))

	render.JSON(w, r, Response{
		Message: "Вход выполнен",
		Token:   session.Token,
		User:    session.Identity,
	})
}
