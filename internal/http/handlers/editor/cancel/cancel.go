// Package cancel реализует HTTP-обработчик отмены редактирования.
package cancel

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/khussac/proconnect-api/internal/http/middlewarectx"
	"github.com/khussac/proconnect-api/internal/http/response"
	"github.com/khussac/proconnect-api/internal/lib/sl"
)

// Handler обрабатывает запросы отмены редактирования.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс отмены редактирования.
type Service interface {
	Cancel(ctx context.Context, userID int) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отменить редактирование
// @Description Закрывает редактирование без сохранения. Отмена без открытого черновика не считается ошибкой.
// @Tags Editor
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Редактирование закрыто"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profile/edit [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.editor.cancel"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.SessionUser(r.Context())
	if !ok {
		log.Error("session user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Cancel(r.Context(), user.ID); err != nil {
		log.Error("failed to cancel edit", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not cancel edit"))
		return
	}

	log.Info("edit cancelled", slog.Int("id", user.ID))
	render.JSON(w, r, response.OK())
}
