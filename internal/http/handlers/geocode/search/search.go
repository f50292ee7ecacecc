// Package search реализует HTTP-обработчик подсказок адресов для
// редактора местоположения.
package search

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/khussac/proconnect-api/internal/http/response"
	"github.com/khussac/proconnect-api/internal/lib/sl"
	"github.com/khussac/proconnect-api/internal/services/geocode"
)

// Handler обрабатывает запросы подсказок адресов.
type Handler struct {
	log    *slog.Logger
	lookup geocode.Lookup
}

// New создает новый Handler с переданными логгером и поставщиком подсказок.
func New(log *slog.Logger, lookup geocode.Lookup) *Handler {
	return &Handler{
		log:    log,
		lookup: lookup,
	}
}

// ServeHTTP godoc
// @Summary Поиск адресов
// @Description Возвращает кандидатов адреса для запроса. Запрос короче трех символов дает пустой список.
// @Tags Geocode
// @Produce  json
// @Security BearerAuth
// @Param query query string true "Частичный адрес"
// @Success 200 {object} map[string]any "Кандидаты адреса"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /geocode [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.geocode.search"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query().Get("query")
	results, err := h.lookup.Search(r.Context(), query)
	if err != nil {
		log.Error("failed to search address", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not search address"))
		return
	}
	if results == nil {
		results = []geocode.Candidate{}
	}

	log.Info("address searched", slog.Int("results", len(results)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"results": results,
	}))
}
