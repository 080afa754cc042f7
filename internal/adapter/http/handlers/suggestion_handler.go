package handlers

import (
	"errors"
	"net/http"

	request "assettrack/internal/adapter/http/dto/request"
	response "assettrack/internal/adapter/http/dto/response"
	"assettrack/internal/usecase"
	"assettrack/pkg"

	"github.com/gin-gonic/gin"
)

// SuggestionHandler exposes the AI status suggestion for an asset.

type SuggestionHandler struct {
	usecase usecase.ISuggestionUseCase
}

func NewSuggestionHandler(uc usecase.ISuggestionUseCase) *SuggestionHandler {
	return &SuggestionHandler{usecase: uc}
}

func (h *SuggestionHandler) SuggestAssetStatus(c *gin.Context) {
	// Notes are optional, so an empty body is fine.
	var payload request.SuggestStatusRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_SUGGESTION_INPUT", "Invalid suggestion payload", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	suggestion, err := h.usecase.Suggest(c.Request.Context(), c.Param("asset_id"), payload.Notes)
	if err != nil {
		appErr := mapSuggestionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSuggestion(suggestion))
}

func mapSuggestionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssetNotFound):
		return pkg.NewDomainErrorSimple("ASSET_NOT_FOUND", "Asset not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSuggestionUnavailable):
		return pkg.NewDomainErrorSimple("SUGGESTION_UNAVAILABLE", "Status suggestion is currently unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
