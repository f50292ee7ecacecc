// Package updateitem реализует HTTP-обработчик замены элемента списковой
// секции черновика по индексу.
package updateitem

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/khussac/proconnect-api/internal/http/middlewarectx"
	"github.com/khussac/proconnect-api/internal/http/response"
	"github.com/khussac/proconnect-api/internal/lib/sl"
	"github.com/khussac/proconnect-api/internal/models"
	"github.com/khussac/proconnect-api/internal/services/editor"
)

// Request — структура входных данных замены элемента.
type Request struct {
	Section string `json:"section" validate:"required,oneof=services gallery"`
	Item    string `json:"item"`
}

// Handler обрабатывает запросы замены элемента.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс поэлементных операций черновика.
type Service interface {
	UpdateItem(ctx context.Context, userID int, section models.SectionKey, index int, item string) (models.Draft, error)
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
// @Summary Заменить элемент списка
// @Description Заменяет элемент списковой секции открытого черновика по индексу.
// @Tags Editor
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param index path int true "Индекс элемента"
// @Param request body Request true "Секция и новый элемент"
// @Success 200 {object} map[string]any "Обновленный черновик"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или индекс"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 409 {object} response.ErrorResponse "Секция не открыта"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации или индекс вне списка"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profile/edit/items/{index} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.editor.updateitem"

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

	draft, err := h.service.UpdateItem(r.Context(), user.ID, models.SectionKey(req.Section), index, req.Item)
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
			log.Error("failed to update item", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update item"))
		}
		return
	}

	log.Info("item updated", slog.Int("id", user.ID), slog.Int("index", index))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"section": draft.Section(),
		"draft":   draft,
	}))
}
