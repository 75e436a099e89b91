package handlers

import (
	"context"
	"encoding/json"
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

func TestClientHandler_GetProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no profile document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientProfileUseCase(ctrl)
		h := NewClientHandler(uc)
		r := authedRouter(ctrl, func(api *gin.RouterGroup) { api.GET("/clients/profile", h.GetProfile) })

		uc.EXPECT().Get(gomock.Any(), "client-1").Return(nil, usecase.ErrProfileNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/clients/profile", ""))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "CLIENT_NOT_FOUND" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientProfileUseCase(ctrl)
		h := NewClientHandler(uc)
		r := authedRouter(ctrl, func(api *gin.RouterGroup) { api.GET("/clients/profile", h.GetProfile) })

		now := time.Now().UTC()
		uc.EXPECT().Get(gomock.Any(), "client-1").Return(&entities.ClientProfile{
			UID: "client-1", Name: "Jane", Email: "jane@example.com", Plan: "pro", CreatedAt: now, UpdatedAt: now,
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/clients/profile", ""))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Data map[string]any `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Data["uid"] != "client-1" || body.Data["plan"] != "pro" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestClientHandler_UpdateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientProfileUseCase(ctrl)
	h := NewClientHandler(uc)
	r := authedRouter(ctrl, func(api *gin.RouterGroup) { api.PUT("/clients/profile", h.UpdateProfile) })

	uc.EXPECT().Update(gomock.Any(), "client-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, uid string, in usecase.UpdateProfileInput) (*entities.ClientProfile, error) {
			if in.Company == nil || *in.Company != "Acme" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &entities.ClientProfile{UID: uid, Company: "Acme"}, nil
		})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPut, "/api/clients/profile", `{"company":"Acme"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
