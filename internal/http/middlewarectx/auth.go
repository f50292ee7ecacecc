// Package middlewarectx содержит HTTP middleware авторизации и ограничения
// частоты запросов.
//
// AuthMiddleware проверяет наличие и валидность сессионного токена в
// заголовке Authorization и в случае успеха добавляет в контекст запись
// пользователя сессии для дальнейшего использования в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением
// об ошибке.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/khussac/proconnect-api/internal/http/response"
	"github.com/khussac/proconnect-api/internal/lib/sl"
	"github.com/khussac/proconnect-api/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ записи пользователя сессии в контексте.
const User Key = "user"

// Service описывает интерфейс проверки сессионного токена.
type Service interface {
	Authenticate(ctx context.Context, token string) (*models.SessionUser, error)
}

// SessionUser извлекает пользователя сессии из контекста запроса.
func SessionUser(ctx context.Context) (*models.SessionUser, bool) {
	user, ok := ctx.Value(User).(*models.SessionUser)
	return user, ok
}

// AuthMiddleware возвращает HTTP middleware, который проверяет токен в
// заголовке Authorization.
//
// Если токен привязан к активной сессии, добавляет пользователя сессии в
// контекст запроса, иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func AuthMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := authService.Authenticate(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired session", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired session"))
				return
			}
			ctx := context.WithValue(r.Context(), User, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
