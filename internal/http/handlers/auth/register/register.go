// Package register реализует HTTP-обработчик регистрации пользователя.
//
// Handler принимает JSON с именем, email и паролем, валидирует их,
// создает учетную запись через сервис аутентификации и возвращает
// подписанный токен сессии вместе с публичными полями пользователя.
package register

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

// Request — входные данные для регистрации
type Request struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response — тело успешного ответа регистрации.
type Response struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    models.Identity `json:"user"`
}

// Handler управляет HTTP-запросами на регистрацию.
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
// @Summary Зарегистрировать пользователя
// @Description Создает учетную запись и возвращает токен сессии.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Данные нового пользователя"
// @Success 200 {object} Response "Регистрация успешна"
// @Failure 400 {object} response.Message "Неполные данные или дубликат"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Все поля обязательны"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Все поля обязательны"))
		return
	}
	if len(req.Password) < 6 {
		log.Error("password too short")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Пароль должен содержать минимум 6 символов"))
		return
	}

	session, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			log.Error("user already exists", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Пользователь с таким email или именем уже существует"))
			return
		}
		log.Error("registration failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Ошибка создания пользователя"))
		return
	}
	log.Info("user registered", slog.Int64("user_id", session.Identity.ID))

	render.JSON(w, r, Response{
		Message: "Регистрация успешна",
		Token:   session.Token,
		User:    session.Identity,
	})
}
