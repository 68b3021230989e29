// Package storefront предоставляет маршруты сервера витрины.
package storefront

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/colddogs/storefront/internal/http/handlers/auth/login"
	"github.com/colddogs/storefront/internal/http/handlers/auth/register"
	"github.com/colddogs/storefront/internal/http/handlers/health"
	newslist "github.com/colddogs/storefront/internal/http/handlers/news/list"
	ordercreate "github.com/colddogs/storefront/internal/http/handlers/order/create"
	profileread "github.com/colddogs/storefront/internal/http/handlers/profile/read"
	profileupdate "github.com/colddogs/storefront/internal/http/handlers/profile/update"
	sublist "github.com/colddogs/storefront/internal/http/handlers/subscription/list"
	"github.com/colddogs/storefront/internal/http/middlewarectx"
	"github.com/colddogs/storefront/internal/lib/jwt"
	authservice "github.com/colddogs/storefront/internal/services/auth"
	newsservice "github.com/colddogs/storefront/internal/services/news"
	orderservice "github.com/colddogs/storefront/internal/services/order"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker,
	authService *authservice.Service, orderService *orderservice.Service, newsService *newsservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/news", newslist.New(logger, newsService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, 50, 100))
			r.Get("/profile", profileread.New(logger, authService).ServeHTTP)
			r.Put("/profile", profileupdate.New(logger, authService).ServeHTTP)
			r.Post("/orders", ordercreate.New(logger, orderService).ServeHTTP)
			r.Get("/subscriptions", sublist.New(logger, orderService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
