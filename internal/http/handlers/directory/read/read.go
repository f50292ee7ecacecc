// Package read реализует HTTP-обработчик получения профессионала по ID.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/khussac/proconnect-api/internal/http/response"
	"github.com/khussac/proconnect-api/internal/lib/sl"
	"github.com/khussac/proconnect-api/internal/models"
	"github.com/khussac/proconnect-api/internal/storage"
)

// Handler обрабатывает запросы чтения одной записи каталога.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс чтения записи каталога.
type Service interface {
	Get(ctx context.Context, id int) (*models.Professional, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Профиль профессионала
// @Description Возвращает одну запись каталога по идентификатору.
// @Tags Directory
// @Produce  json
// @Param id path int true "Идентификатор профессионала"
// @Success 200 {object} map[string]any "Запись каталога"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /professionals/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.directory.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	professional, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("professional not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("professional not found"))
			return
		}
		log.Error("failed to read professional", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read professional"))
		return
	}

	log.Info("professional read", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"professional": professional,
	}))
}
