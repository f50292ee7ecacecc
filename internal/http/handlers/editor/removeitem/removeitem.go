// Package removeitem реализует HTTP-обработчик удаления элемента
// списковой секции черновика по индексу.
package removeitem

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/khussac/proconnect-api/internal/http/middlewarectx"
	"github.com/khussac/proconnect-api/internal/http/response"
	"github.com/khussac/proconnect-api/internal/lib/sl"
	"github.com/khussac/proconnect-api/internal/models"
	"github.com/khussac/proconnect-api/internal/services/editor"
)

// Handler обрабатывает запросы удаления элемента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс поэлементных операций черновика.
type Service interface {
	RemoveItem(ctx context.Context, userID int, section models.SectionKey, index int) (models.Draft, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить элемент списка
// @Description Удаляет элемент списковой секции открытого черновика по индексу. Секция передается query-параметром.
// @Tags Editor
// @Produce  json
// @Security BearerAuth
// @Param index path int true "Индекс элемента"
// @Param section query string true "Ключ списковой секции"
// @Success 200 {object} map[string]any "Обновленный черновик"
// @Failure 400 {object} response.ErrorResponse "Некорректный индекс или секция"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 409 {object} response.ErrorResponse "Секция не открыта"
// @Failure 422 {object} response.ErrorResponse "Индекс вне списка"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profile/edit/items/{index} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.editor.removeitem"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		log.Error("failed to decode index from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode index from url"))
		return
	}

	section := models.SectionKey(r.URL.Query().Get("section"))
	if !section.IsList() {
		log.Error("invalid list section", slog.String("section", string(section)))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid list section"))
		return
	}

	user, ok := middlewarectx.SessionUser(r.Context())
	if !ok {
		log.Error("session user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	draft, err := h.service.RemoveItem(r.Context(), user.ID, section, index)
	if err != nil {
		switch {
		case errors.Is(err, editor.ErrNoActiveEdit):
			log.Info("section is not open", slog.Int("id", user.ID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("no active edit for this section"))
		case errors.Is(err, editor.ErrBadIndex):
			log.Info("item index out of range", slog.Int("index", index))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("item index out of range"))
		default:
			log.Error("failed to remove item", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not remove item"))
		}
		return
	}

	log.Info("item removed", slog.Int("id", user.ID), slog.Int("index", index))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"section": draft.Section(),
		"draft":   draft,
	}))
}
