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

func TestRoomHandler_CreateRoom(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoomUseCase(ctrl)
		h := NewRoomHandler(uc)

		r := gin.New()
		r.POST("/v1/rooms", h.CreateRoom)

		req := httptest.NewRequest(http.MethodPost, "/v1/rooms", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("short name maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoomUseCase(ctrl)
		h := NewRoomHandler(uc)

		r := gin.New()
		r.POST("/v1/rooms", h.CreateRoom)

		uc.EXPECT().Create(gomock.Any(), "AB", "Dana").Return(entities.Room{}, usecase.ErrInvalidRoomName)

		req := httptest.NewRequest(http.MethodPost, "/v1/rooms", bytes.NewBufferString(`{"name":"AB","manager":"Dana"}`))
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
		uc := mocks.NewMockIRoomUseCase(ctrl)
		h := NewRoomHandler(uc)

		r := gin.New()
		r.POST("/v1/rooms", h.CreateRoom)

		uc.EXPECT().Create(gomock.Any(), "Server Room", "Dana").Return(entities.Room{ID: "room-1", Name: "Server Room", Manager: "Dana"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/rooms", bytes.NewBufferString(`{"name":"Server Room","manager":"Dana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "room-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestRoomHandler_GetRoom(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoomUseCase(ctrl)
		h := NewRoomHandler(uc)

		r := gin.New()
		r.GET("/v1/rooms/:room_id", h.GetRoom)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Room{}, usecase.ErrRoomNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/rooms/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoomUseCase(ctrl)
		h := NewRoomHandler(uc)

		r := gin.New()
		r.GET("/v1/rooms/:room_id", h.GetRoom)

		uc.EXPECT().GetByID(gomock.Any(), "room-1").Return(entities.Room{ID: "room-1", Name: "Server Room", Manager: "Dana"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/rooms/room-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRoomHandler_ListRooms(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRoomUseCase(ctrl)
	h := NewRoomHandler(uc)

	r := gin.New()
	r.GET("/v1/rooms", h.ListRooms)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Room{
		{ID: "room-1", Name: "Server Room", Manager: "Dana"},
		{ID: "room-2", Name: "Lab", Manager: "Eli"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 {
		t.Fatalf("expected 2 rooms, got %s", w.Body.String())
	}
}

func TestRoomHandler_DeleteRoom(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoomUseCase(ctrl)
		h := NewRoomHandler(uc)

		r := gin.New()
		r.DELETE("/v1/rooms/:room_id", h.DeleteRoom)

		uc.EXPECT().Delete(gomock.Any(), "room-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/rooms/room-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoomUseCase(ctrl)
		h := NewRoomHandler(uc)

		r := gin.New()
		r.DELETE("/v1/rooms/:room_id", h.DeleteRoom)

		uc.EXPECT().Delete(gomock.Any(), "missing").Return(usecase.ErrRoomNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/rooms/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapRoomError(t *testing.T) {
	if got := mapRoomError(usecase.ErrInvalidRoomID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRoomError(usecase.ErrInvalidRoomName); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRoomError(usecase.ErrInvalidRoomManager); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRoomError(usecase.ErrRoomNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapRoomError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
