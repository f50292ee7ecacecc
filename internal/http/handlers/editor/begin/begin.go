// Package begin реализует HTTP-обработчик открытия секции профиля
// на редактирование.
//
// Handler валидирует ключ секции, открывает черновик через сервис
// редактора и возвращает его содержимое. Попытка открыть вторую секцию
// при живом черновике завершается конфликтом.
package begin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/khussac/proconnect-api/internal/http/middlewarectx"
	"github.com/khussac/proconnect-api/internal/http/response"
	"github.com/khussac/proconnect-api/internal/lib/sl"
	"github.com/khussac/proconnect-api/internal/models"
	"github.com/khussac/proconnect-api/internal/services/editor"
)

// Request — структура входных данных для открытия секции.
type Request struct {
	Section string `json:"section" validate:"required,oneof=description services gallery pricing contact location"`
}

// Handler обрабатывает запросы открытия секции.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс открытия черновика.
type Service interface {
	Begin(ctx context.Context, userID int, section models.SectionKey) (models.Draft, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Открыть секцию профиля
// @Description Открывает секцию на редактирование и возвращает черновик, инициализированный из записи.
// @Tags Editor
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Ключ секции"
// @Success 200 {object} map[string]any "Черновик секции"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 409 {object} response.ErrorResponse "Открыта другая секция"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profile/edit [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.editor.begin"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, ok := middlewarectx.SessionUser(r.Context())
	if !ok {
		log.Error("session user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	draft, err := h.service.Begin(r.Context(), user.ID, models.SectionKey(req.Section))
	if err != nil {
		if errors.Is(err, editor.ErrEditConflict) {
			log.Info("another section already open", slog.Int("id", user.ID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("another profile section is being edited"))
			return
		}
		log.Error("failed to begin edit", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not begin edit"))
		return
	}

	log.Info("section opened", slog.Int("id", user.ID), slog.String("section", req.Section))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"section": draft.Section(),
		"draft":   draft,
	}))
}
