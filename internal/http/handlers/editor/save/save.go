// Package save реализует HTTP-обработчик сохранения открытого черновика.
package save

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/khussac/proconnect-api/internal/http/middlewarectx"
	"github.com/khussac/proconnect-api/internal/http/response"
	"github.com/khussac/proconnect-api/internal/lib/sl"
	"github.com/khussac/proconnect-api/internal/models"
	"github.com/khussac/proconnect-api/internal/services/editor"
)

// Handler обрабатывает запросы сохранения черновика.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс сохранения черновика.
type Service interface {
	Save(ctx context.Context, userID int) (*models.Professional, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сохранить черновик
// @Description Применяет открытый черновик к записи, сохраняет её и закрывает редактирование.
// @Tags Editor
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Обновленная запись"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 409 {object} response.ErrorResponse "Нет открытого черновика"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profile/edit/save [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.editor.save"

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

	professional, err := h.service.Save(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, editor.ErrNoActiveEdit) {
			log.Info("no draft to save", slog.Int("id", user.ID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("no active edit"))
			return
		}
		log.Error("failed to save draft", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save draft"))
		return
	}

	log.Info("draft saved", slog.Int("id", user.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"professional": professional,
	}))
}
