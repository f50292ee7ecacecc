// Package list реализует HTTP-обработчик выдачи каталога профессионалов.
//
// Handler читает критерии фильтрации из query-параметров, вызывает
// бизнес-логику каталога и возвращает отфильтрованный список в
// JSON-формате. Нечисловое значение границы тарифа трактуется как
// незаданный фильтр.
package list

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/khussac/proconnect-api/internal/http/response"
	"github.com/khussac/proconnect-api/internal/lib/sl"
	"github.com/khussac/proconnect-api/internal/models"
)

// Handler обрабатывает запросы списка профессионалов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики каталога.
type Service interface {
	List(ctx context.Context, filter models.Filter) ([]*models.Professional, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список профессионалов
// @Description Возвращает активных профессионалов, удовлетворяющих фильтру, в исходном порядке.
// @Tags Directory
// @Produce  json
// @Param search query string false "Подстрока имени, профессии или услуги"
// @Param location query string false "Подстрока округа или города"
// @Param minRate query number false "Нижняя граница тарифа"
// @Param maxRate query number false "Верхняя граница тарифа"
// @Success 200 {object} map[string]any "Список профессионалов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /professionals [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.directory.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query()
	filter := models.Filter{
		Search:   query.Get("search"),
		Location: query.Get("location"),
		MinRate:  parseRate(query.Get("minRate")),
		MaxRate:  parseRate(query.Get("maxRate")),
	}

	professionals, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list professionals", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list professionals"))
		return
	}

	log.Info("professionals listed", slog.Int("total", len(professionals)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"professionals": professionals,
		"total":         len(professionals),
	}))
}

// parseRate возвращает nil для пустых и нечисловых значений, чтобы
// испорченный параметр не превращался в NaN внутри сравнения.
func parseRate(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
