package begin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/khussac/proconnect-api/internal/http/middlewarectx"
	"github.com/khussac/proconnect-api/internal/models"
	"github.com/khussac/proconnect-api/internal/services/editor"
)

type EditorServiceMock struct {
	mock.Mock
}

func (m *EditorServiceMock) Begin(ctx context.Context, userID int, section models.SectionKey) (models.Draft, error) {
	args := m.Called(ctx, userID, section)
	draft, _ := args.Get(0).(models.Draft)
	return draft, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestBeginHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		withUser       bool
		mockDraft      models.Draft
		mockErr        error
		wantStatusCode int
		wantStatus     string
		wantError      string
	}{
		{
			name:           "open services section",
			requestBody:    Request{Section: "services"},
			withUser:       true,
			mockDraft:      &models.ServicesDraft{Services: []string{"Diseño web"}},
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "unknown section",
			requestBody:    Request{Section: "reviews"},
			withUser:       true,
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     "Error",
			wantError:      "field Section has an unsupported value",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			withUser:       true,
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantError:      "invalid request body",
		},
		{
			name:           "no session user in context",
			requestBody:    Request{Section: "services"},
			withUser:       false,
			wantStatusCode: http.StatusUnauthorized,
			wantStatus:     "Error",
			wantError:      "unauthorized",
		},
		{
			name:           "another section open",
			requestBody:    Request{Section: "gallery"},
			withUser:       true,
			mockErr:        editor.ErrEditConflict,
			wantStatusCode: http.StatusConflict,
			wantStatus:     "Error",
			wantError:      "another profile section is being edited",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(EditorServiceMock)
			if tt.mockDraft != nil || tt.mockErr != nil {
				serviceMock.On("Begin", mock.Anything, 1, mock.Anything).
					Return(tt.mockDraft, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), serviceMock)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/edit", bytes.NewReader(bodyBytes))
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			if tt.withUser {
				ctx = context.WithValue(ctx, middlewarectx.User,
					&models.SessionUser{ID: 1, Name: "María González", Email: "maria@email.com"})
			}
			req = req.WithContext(ctx)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Equal(t, tt.wantError, errStr)
			} else {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "services", data["section"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
