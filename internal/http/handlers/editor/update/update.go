// Package update реализует HTTP-обработчик замены содержимого открытого
// черновика секции.
package update

import (
	"context"
	"encoding/json"
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

// Handler обрабатывает запросы замены черновика.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс замены черновика.
type Service interface {
	Update(ctx context.Context, userID int, draft models.Draft) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить черновик секции
// @Description Заменяет содержимое открытого черновика. Секция в теле должна совпадать с открытой.
// @Tags Editor
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DraftEnvelope true "Секция и её содержимое"
// @Success 200 {object} map[string]any "Обновленный черновик"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или неизвестная секция"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 409 {object} response.ErrorResponse "Секция не открыта"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profile/edit [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.editor.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var envelope models.DraftEnvelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	draft, err := envelope.Decode()
	if err != nil {
		log.Error("failed to decode draft", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid draft payload"))
		return
	}

	user, ok := middlewarectx.SessionUser(r.Context())
	if !ok {
		log.Error("session user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Update(r.Context(), user.ID, draft); err != nil {
		if errors.Is(err, editor.ErrNoActiveEdit) {
			log.Info("section is not open", slog.Int("id", user.ID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("no active edit for this section"))
			return
		}
		log.Error("failed to update draft", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update draft"))
		return
	}

	log.Info("draft updated", slog.Int("id", user.ID), slog.String("section", string(draft.Section())))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"section": draft.Section(),
		"draft":   draft,
	}))
}
