// Package read реализует HTTP-обработчик чтения собственного профиля.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/khussac/proconnect-api/internal/http/middlewarectx"
	"github.com/khussac/proconnect-api/internal/http/response"
	"github.com/khussac/proconnect-api/internal/lib/sl"
	"github.com/khussac/proconnect-api/internal/models"
)

// Handler обрабатывает запросы чтения собственного профиля.
type Handler struct {
	log       *slog.Logger
	directory DirectoryService
	editor    EditorService
}

// DirectoryService описывает интерфейс чтения записи каталога.
type DirectoryService interface {
	Get(ctx context.Context, id int) (*models.Professional, error)
}

// EditorService описывает интерфейс чтения открытого черновика.
type EditorService interface {
	Active(ctx context.Context, userID int) (models.Draft, error)
}

// New создает новый Handler с переданными логгером и сервисами.
func New(log *slog.Logger, directory DirectoryService, editor EditorService) *Handler {
	return &Handler{
		log:       log,
		directory: directory,
		editor:    editor,
	}
}

// ServeHTTP godoc
// @Summary Собственный профиль
// @Description Возвращает запись текущего профессионала и открытый черновик, если редактирование начато.
// @Tags Profile
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Запись и черновик"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.SessionUser(r.Context())
	if !ok {
		log.Error("session user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	professional, err := h.directory.Get(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to read own profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read profile"))
		return
	}

	draft, err := h.editor.Active(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to read active draft", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read profile"))
		return
	}

	data := map[string]any{"professional": professional}
	if draft != nil {
		data["draft"] = draft
		data["editingSection"] = draft.Section()
	}

	log.Info("profile read", slog.Int("id", user.ID))
	render.JSON(w, r, response.OKWithData(data))
}
