package proconnect

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/khussac/proconnect-api/internal/config"
	"github.com/khussac/proconnect-api/internal/http/handlers/auth/login"
	"github.com/khussac/proconnect-api/internal/http/handlers/auth/logout"
	"github.com/khussac/proconnect-api/internal/http/handlers/auth/register"
	"github.com/khussac/proconnect-api/internal/http/handlers/auth/session"
	"github.com/khussac/proconnect-api/internal/http/handlers/directory/contact"
	"github.com/khussac/proconnect-api/internal/http/handlers/directory/health"
	"github.com/khussac/proconnect-api/internal/http/handlers/directory/list"
	directoryread "github.com/khussac/proconnect-api/internal/http/handlers/directory/read"
	"github.com/khussac/proconnect-api/internal/http/handlers/editor/additem"
	"github.com/khussac/proconnect-api/internal/http/handlers/editor/begin"
	"github.com/khussac/proconnect-api/internal/http/handlers/editor/cancel"
	"github.com/khussac/proconnect-api/internal/http/handlers/editor/removeitem"
	"github.com/khussac/proconnect-api/internal/http/handlers/editor/save"
	"github.com/khussac/proconnect-api/internal/http/handlers/editor/update"
	"github.com/khussac/proconnect-api/internal/http/handlers/editor/updateitem"
	"github.com/khussac/proconnect-api/internal/http/handlers/geocode/districts"
	"github.com/khussac/proconnect-api/internal/http/handlers/geocode/search"
	profileread "github.com/khussac/proconnect-api/internal/http/handlers/profile/read"
	"github.com/khussac/proconnect-api/internal/http/middlewarectx"
	authservice "github.com/khussac/proconnect-api/internal/services/auth"
	directoryservice "github.com/khussac/proconnect-api/internal/services/directory"
	editorservice "github.com/khussac/proconnect-api/internal/services/editor"
	"github.com/khussac/proconnect-api/internal/services/geocode"
	"github.com/khussac/proconnect-api/internal/services/notifier"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	directoryService *directoryservice.Service, authService *authservice.Service,
	editorService *editorservice.Service, lookup geocode.Lookup, contactNotifier notifier.Notifier) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Post("/logout", logout.New(logger, authService).ServeHTTP)
		r.Get("/session", session.New(logger, authService).ServeHTTP)
		r.Get("/professionals", list.New(logger, directoryService).ServeHTTP)
		r.Get("/professionals/{id}", directoryread.New(logger, directoryService).ServeHTTP)
		r.Get("/professionals/{id}/contact-link", contact.New(logger, directoryService, contactNotifier, cfg.SiteName).ServeHTTP)
		r.Get("/districts", districts.New(logger).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с проверкой сессии
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, 10, 30))
			r.Get("/profile", profileread.New(logger, directoryService, editorService).ServeHTTP)
			r.Post("/profile/edit", begin.New(logger, editorService).ServeHTTP)
			r.Put("/profile/edit", update.New(logger, editorService).ServeHTTP)
			r.Delete("/profile/edit", cancel.New(logger, editorService).ServeHTTP)
			r.Post("/profile/edit/items", additem.New(logger, editorService).ServeHTTP)
			r.Put("/profile/edit/items/{index}", updateitem.New(logger, editorService).ServeHTTP)
			r.Delete("/profile/edit/items/{index}", removeitem.New(logger, editorService).ServeHTTP)
			r.Post("/profile/edit/save", save.New(logger, editorService).ServeHTTP)
			r.Get("/geocode", search.New(logger, lookup).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
