// Package districts реализует HTTP-обработчик выдачи известных округов
// Лимы с координатами центров.
package districts

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/khussac/proconnect-api/internal/http/response"
	"github.com/khussac/proconnect-api/internal/models"
	"github.com/khussac/proconnect-api/internal/services/geocode"
)

// District — округ с координатами центра.
type District struct {
	Name        string             `json:"name"`
	Coordinates models.Coordinates `json:"coordinates"`
}

// Handler отвечает на запросы списка округов.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

// ServeHTTP godoc
// @Summary Округа Лимы
// @Description Возвращает известные округа с координатами центров в алфавитном порядке.
// @Tags Geocode
// @Produce  json
// @Success 200 {object} map[string]any "Список округов"
// @Router /districts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	names := geocode.Districts()
	districts := make([]District, 0, len(names))
	for _, name := range names {
		coords, _ := geocode.DistrictCenter(name)
		districts = append(districts, District{Name: name, Coordinates: coords})
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"districts": districts,
	}))
}
