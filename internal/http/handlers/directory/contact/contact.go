// Package contact реализует HTTP-обработчик выдачи ссылки для связи
// с профессионалом через WhatsApp.
//
// Handler собирает deep-link по телефону записи и шаблону сообщения,
// публикует событие обращения и возвращает ссылку клиенту. Сбой
// публикации не мешает выдаче ссылки.
package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/khussac/proconnect-api/internal/http/response"
	"github.com/khussac/proconnect-api/internal/lib/sl"
	"github.com/khussac/proconnect-api/internal/lib/whatsapp"
	"github.com/khussac/proconnect-api/internal/models"
	"github.com/khussac/proconnect-api/internal/services/notifier"
	"github.com/khussac/proconnect-api/internal/storage"
)

// Handler обрабатывает запросы ссылки для связи.
type Handler struct {
	log      *slog.Logger
	service  Service
	notifier notifier.Notifier
	siteName string
}

// Service описывает интерфейс чтения записи каталога.
type Service interface {
	Get(ctx context.Context, id int) (*models.Professional, error)
}

// New создает новый Handler с переданными логгером, сервисом и издателем событий.
func New(log *slog.Logger, service Service, n notifier.Notifier, siteName string) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		notifier: n,
		siteName: siteName,
	}
}

// ServeHTTP godoc
// @Summary Ссылка для связи
// @Description Возвращает WhatsApp deep-link для связи с профессионалом.
// @Tags Directory
// @Produce  json
// @Param id path int true "Идентификатор профессионала"
// @Param service query string false "Название интересующей услуги"
// @Param message query string false "Свой текст сообщения вместо шаблона"
// @Success 200 {object} map[string]any "Ссылка для связи"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /professionals/{id}/contact-link [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.directory.contact"

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
		render.JSON(w, r, response.Error("could not build contact link"))
		return
	}

	service := r.URL.Query().Get("service")
	url := whatsapp.ContactURL(
		professional.Phone,
		professional.Name,
		service,
		h.siteName,
		r.URL.Query().Get("message"),
	)

	h.notifier.ContactRequested(notifier.ContactEvent{
		ProfessionalID: id,
		Service:        service,
		RequestedAt:    time.Now().UTC(),
	})

	log.Info("contact link built", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"url": url,
	}))
}
