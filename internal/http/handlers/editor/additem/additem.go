// Package additem реализует HTTP-обработчик добавления элемента в
// списковую секцию черновика.
package additem

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

// Request — структура входных данных добавления элемента. Пустой элемент
// допустим: редактор добавляет заготовку и заполняет её следующим шагом.
type Request struct {
	Section string `json:"section" validate:"required,oneof=services gallery"`
	Item    string `json:"item"`
}

// Handler обрабатывает запросы добавления элемента.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс поэлементных операций черновика.
type Service interface {
	AddItem(ctx context.Context, userID int, section models.SectionKey, item string) (models.Draft, error)
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
// @Summary Добавить элемент списка
// @Description Добавляет элемент в конец списковой секции открытого черновика.
// @Tags Editor
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Секция и элемент"
// @Success 200 {object} map[string]any "Обновленный черновик"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 409 {object} response.ErrorResponse "Секция не открыта"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profile/edit/items [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.editor.additem"

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

	draft, err := h.service.AddItem(r.Context(), user.ID, models.SectionKey(req.Section), req.Item)
	if err != nil {
		if errors.Is(err, editor.ErrNoActiveEdit) {
			log.Info("section is not open", slog.Int("id", user.ID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("no active edit for this section"))
			return
		}
		log.Error("failed to add item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not add item"))
		return
	}

	log.Info("item added", slog.Int("id", user.ID), slog.String("section", req.Section))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"section": draft.Section(),
		"draft":   draft,
	}))
}
