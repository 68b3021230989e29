// Package middlewarectx содержит HTTP middleware витрины: проверку JWT
// токена из заголовка Authorization и ограничитель частоты запросов.
//
// JWTMiddleware кладёт личность пользователя в контекст запроса. Отсутствие
// токена отвечает HTTP 401, невалидный или истёкший токен — HTTP 403.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/colddogs/storefront/internal/http/response"
	"github.com/colddogs/storefront/internal/lib/jwt"
	"github.com/colddogs/storefront/internal/lib/sl"
	"github.com/colddogs/storefront/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// UserIdentity ключ, под которым в контексте лежит models.Identity.
const UserIdentity Key = "identity"

// Тексты ошибок проверки токена, ожидаемые витриной.
const (
	msgTokenRequired = "Access token required"
	msgInvalidToken  = "Invalid token"
)

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT
// в заголовке Authorization и кладёт личность пользователя в контекст.
func JWTMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(msgTokenRequired))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(msgInvalidToken))
				return
			}

			ctx := context.WithValue(r.Context(), UserIdentity, claims.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext достаёт личность пользователя, положенную
// JWTMiddleware. Второй результат false вне защищённого маршрута.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(UserIdentity).(models.Identity)
	return identity, ok
}
