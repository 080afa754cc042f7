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

func TestSuggestionHandler_SuggestAssetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISuggestionUseCase(ctrl)
		h := NewSuggestionHandler(uc)

		r := gin.New()
		r.POST("/v1/assets/:asset_id/suggest-status", h.SuggestAssetStatus)

		matched := entities.AssetStatusRepairing
		uc.EXPECT().Suggest(gomock.Any(), "a-1", "").Return(usecase.Suggestion{AssetID: "a-1", Raw: "repairing", Matched: &matched}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/assets/a-1/suggest-status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["matched_status"] != "repairing" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("notes are passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISuggestionUseCase(ctrl)
		h := NewSuggestionHandler(uc)

		r := gin.New()
		r.POST("/v1/assets/:asset_id/suggest-status", h.SuggestAssetStatus)

		uc.EXPECT().Suggest(gomock.Any(), "a-1", "screen flickers").Return(usecase.Suggestion{AssetID: "a-1", Raw: "send it to repair"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/assets/a-1/suggest-status", bytes.NewBufferString(`{"notes":"screen flickers"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["matched_status"] != nil {
			t.Fatalf("expected null matched_status, got %s", w.Body.String())
		}
	})

	t.Run("gateway unavailable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISuggestionUseCase(ctrl)
		h := NewSuggestionHandler(uc)

		r := gin.New()
		r.POST("/v1/assets/:asset_id/suggest-status", h.SuggestAssetStatus)

		uc.EXPECT().Suggest(gomock.Any(), "a-1", "").Return(usecase.Suggestion{}, usecase.ErrSuggestionUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/assets/a-1/suggest-status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("asset not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISuggestionUseCase(ctrl)
		h := NewSuggestionHandler(uc)

		r := gin.New()
		r.POST("/v1/assets/:asset_id/suggest-status", h.SuggestAssetStatus)

		uc.EXPECT().Suggest(gomock.Any(), "missing", "").Return(usecase.Suggestion{}, usecase.ErrAssetNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/assets/missing/suggest-status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapSuggestionError(t *testing.T) {
	if got := mapSuggestionError(usecase.ErrInvalidAssetID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSuggestionError(usecase.ErrAssetNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSuggestionError(usecase.ErrSuggestionUnavailable); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapSuggestionError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
