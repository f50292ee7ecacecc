// Package session реализует HTTP-обработчик чтения текущей сессии.
//
// Отсутствующий, просроченный или неразборчивый токен трактуется как
// "нет сессии" и возвращает пустого пользователя без ошибки.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/khussac/proconnect-api/internal/http/response"
	"github.com/khussac/proconnect-api/internal/models"
)

// Handler обрабатывает HTTP-запросы чтения текущей сессии.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс проверки сессионного токена.
type Service interface {
	Authenticate(ctx context.Context, token string) (*models.SessionUser, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Текущая сессия
// @Description Возвращает пользователя текущей сессии или null, если сессии нет.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Пользователь сессии или null"
// @Router /session [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.session"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var user *models.SessionUser
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if u, err := h.service.Authenticate(r.Context(), tokenStr); err == nil {
			user = u
		}
	}

	log.Info("session resolved", slog.Bool("active", user != nil))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"user": user,
	}))
}
