package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"client_portal/internal/adapter/http/handlers/mocks"
	"client_portal/internal/domain/entities"
	"client_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSupportHandler_CreateTicket(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid priority", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupportTicketUseCase(ctrl)
		h := NewSupportHandler(uc)
		r := authedRouter(ctrl, func(api *gin.RouterGroup) { api.POST("/support", h.CreateTicket) })

		uc.EXPECT().Create(gomock.Any(), "client-1", gomock.Any()).Return(nil, usecase.ErrInvalidPriority)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/support", `{"subject":"s","message":"m","priority":"critical"}`))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "INVALID_PRIORITY" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupportTicketUseCase(ctrl)
		h := NewSupportHandler(uc)
		r := authedRouter(ctrl, func(api *gin.RouterGroup) { api.POST("/support", h.CreateTicket) })

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), "client-1", usecase.CreateTicketInput{Subject: "s", Message: "m"}).
			Return(&entities.SupportTicket{ID: "tic-1", ClientID: "client-1", Subject: "s", Message: "m", Priority: entities.TicketPriorityMedium, Status: entities.TicketStatusOpen, CreatedAt: now, UpdatedAt: now, LastUpdated: now}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/support", `{"subject":"s","message":"m"}`))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestSupportHandler_AddReply(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupportTicketUseCase(ctrl)
		h := NewSupportHandler(uc)
		r := authedRouter(ctrl, func(api *gin.RouterGroup) { api.POST("/support/reply/:id", h.AddReply) })

		uc.EXPECT().AddReply(gomock.Any(), "client-1", "tic-1", "  ").Return(entities.Reply{}, usecase.ErrEmptyMessage)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/support/reply/tic-1", `{"message":"  "}`))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupportTicketUseCase(ctrl)
		h := NewSupportHandler(uc)
		r := authedRouter(ctrl, func(api *gin.RouterGroup) { api.POST("/support/reply/:id", h.AddReply) })

		uc.EXPECT().AddReply(gomock.Any(), "client-1", "tic-1", "any update?").
			Return(entities.Reply{ID: "rep-1", Message: "any update?", Author: "client", CreatedAt: time.Now().UTC()}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/support/reply/tic-1", `{"message":"any update?"}`))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Data map[string]any `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Data["id"] != "rep-1" || body.Data["author"] != "client" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown ticket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupportTicketUseCase(ctrl)
		h := NewSupportHandler(uc)
		r := authedRouter(ctrl, func(api *gin.RouterGroup) { api.POST("/support/reply/:id", h.AddReply) })

		uc.EXPECT().AddReply(gomock.Any(), "client-1", "missing", "hi").Return(entities.Reply{}, usecase.ErrNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/support/reply/missing", `{"message":"hi"}`))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "TICKET_NOT_FOUND" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSupportHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISupportTicketUseCase(ctrl)
	h := NewSupportHandler(uc)
	r := authedRouter(ctrl, func(api *gin.RouterGroup) { api.PUT("/support/status/:id", h.UpdateStatus) })

	uc.EXPECT().UpdateStatus(gomock.Any(), "client-1", "tic-1", "resolved").Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPut, "/api/support/status/tic-1", `{"status":"resolved"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapSupportError(t *testing.T) {
	if got := mapSupportError(usecase.ErrEmptyMessage); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSupportError(usecase.ErrMissingFields); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSupportError(usecase.ErrInvalidStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSupportError(usecase.ErrInvalidPriority); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSupportError(usecase.ErrNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSupportError(usecase.ErrForbidden); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapSupportError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
