package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"assettrack/internal/adapter/http/handlers/mocks"
	"assettrack/internal/domain/entities"
	"assettrack/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAssetHandler_AllocateAssets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc, "http://localhost:8080")

		r := gin.New()
		r.POST("/v1/rooms/:room_id/assets", h.AllocateAssets)

		req := httptest.NewRequest(http.MethodPost, "/v1/rooms/room-1/assets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("allocation conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc, "http://localhost:8080")

		r := gin.New()
		r.POST("/v1/rooms/:room_id/assets", h.AllocateAssets)

		uc.EXPECT().Allocate(gomock.Any(), "room-1", "Laptop", 3).Return(nil, usecase.ErrAllocationConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/rooms/room-1/assets", bytes.NewBufferString(`{"name":"Laptop","quantity":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("room not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc, "http://localhost:8080")

		r := gin.New()
		r.POST("/v1/rooms/:room_id/assets", h.AllocateAssets)

		uc.EXPECT().Allocate(gomock.Any(), "missing", "Laptop", 1).Return(nil, usecase.ErrRoomNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/rooms/missing/assets", bytes.NewBufferString(`{"name":"Laptop","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns created batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc, "http://localhost:8080")

		r := gin.New()
		r.POST("/v1/rooms/:room_id/assets", h.AllocateAssets)

		uc.EXPECT().Allocate(gomock.Any(), "room-1", "Laptop", 2).Return([]entities.Asset{
			{ID: "a-1", Code: "LAPTOP-0001", Name: "Laptop", RoomID: "room-1", Status: entities.AssetStatusInUse, DateAdded: "2026-08-29"},
			{ID: "a-2", Code: "LAPTOP-0002", Name: "Laptop", RoomID: "room-1", Status: entities.AssetStatusInUse, DateAdded: "2026-08-29"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/rooms/room-1/assets", bytes.NewBufferString(`{"name":"Laptop","quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["code"] != "LAPTOP-0001" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAssetHandler_UpdateAssetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc, "http://localhost:8080")

		r := gin.New()
		r.PATCH("/v1/assets/:asset_id/status", h.UpdateAssetStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "a-1", "melted").Return(entities.Asset{}, usecase.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/assets/a-1/status", bytes.NewBufferString(`{"status":"melted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc, "http://localhost:8080")

		r := gin.New()
		r.PATCH("/v1/assets/:asset_id/status", h.UpdateAssetStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "a-1", "broken").Return(entities.Asset{
			ID: "a-1", Code: "LAPTOP-0001", Name: "Laptop", RoomID: "room-1", Status: entities.AssetStatusBroken,
			History: []entities.HistoryEntry{{Status: entities.AssetStatusInUse, Date: "2026-08-01"}, {Status: entities.AssetStatusBroken, Date: "2026-08-29"}},
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/assets/a-1/status", bytes.NewBufferString(`{"status":"broken"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "broken" || body["status_label"] != "Broken" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAssetHandler_MoveAsset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("target room missing maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc, "http://localhost:8080")

		r := gin.New()
		r.PATCH("/v1/assets/:asset_id/move", h.MoveAsset)

		uc.EXPECT().Move(gomock.Any(), "a-1", "missing").Return(entities.Asset{}, usecase.ErrInvalidTargetRoom)

		req := httptest.NewRequest(http.MethodPatch, "/v1/assets/a-1/move", bytes.NewBufferString(`{"room_id":"missing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc, "http://localhost:8080")

		r := gin.New()
		r.PATCH("/v1/assets/:asset_id/move", h.MoveAsset)

		uc.EXPECT().Move(gomock.Any(), "a-1", "room-2").Return(entities.Asset{ID: "a-1", RoomID: "room-2", Status: entities.AssetStatusInUse}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/assets/a-1/move", bytes.NewBufferString(`{"room_id":"room-2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["room_id"] != "room-2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAssetHandler_AssetQRLabel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("asset not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc, "http://localhost:8080")

		r := gin.New()
		r.GET("/v1/assets/:asset_id/qr", h.AssetQRLabel)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Asset{}, usecase.ErrAssetNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/assets/missing/qr", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns a png", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc, "http://localhost:8080")

		r := gin.New()
		r.GET("/v1/assets/:asset_id/qr", h.AssetQRLabel)

		uc.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Asset{ID: "a-1", Code: "LAPTOP-0001"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/assets/a-1/qr", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "image/png" {
			t.Fatalf("expected image/png, got %q", ct)
		}
		if w.Body.Len() == 0 {
			t.Fatalf("expected non-empty body")
		}
	})
}

func TestMapAssetError(t *testing.T) {
	if got := mapAssetError(usecase.ErrInvalidQuantity); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAssetError(usecase.ErrInvalidStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAssetError(usecase.ErrAssetNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapAssetError(usecase.ErrRoomNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapAssetError(usecase.ErrInvalidTargetRoom); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapAssetError(usecase.ErrAllocationConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapAssetError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
