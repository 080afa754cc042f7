package handlers

import (
	"errors"
	"net/http"

	request "assettrack/internal/adapter/http/dto/request"
	response "assettrack/internal/adapter/http/dto/response"
	"assettrack/internal/adapter/export"
	"assettrack/internal/usecase"
	"assettrack/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAssetPayload = pkg.NewDomainErrorSimple("INVALID_ASSET_INPUT", "Invalid asset payload", http.StatusBadRequest)

// AssetHandler handles HTTP requests for assets: batch allocation, status
// changes, moves and the printable QR label.

type AssetHandler struct {
	usecase usecase.IAssetUseCase
	baseURL string
}

func NewAssetHandler(uc usecase.IAssetUseCase, baseURL string) *AssetHandler {
	return &AssetHandler{usecase: uc, baseURL: baseURL}
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	asset, err := h.usecase.GetByID(c.Request.Context(), c.Param("asset_id"))
	if err != nil {
		appErr := mapAssetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAsset(asset))
}

func (h *AssetHandler) ListRoomAssets(c *gin.Context) {
	assets, err := h.usecase.ListByRoomID(c.Request.Context(), c.Param("room_id"))
	if err != nil {
		appErr := mapAssetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAssets(assets))
}

func (h *AssetHandler) AllocateAssets(c *gin.Context) {
	var payload request.AllocateAssetsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssetPayload.HTTPStatus, errInvalidAssetPayload.ToHTTPError())
		return
	}

	assets, err := h.usecase.Allocate(c.Request.Context(), c.Param("room_id"), payload.Name, payload.Quantity)
	if err != nil {
		appErr := mapAssetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromAssets(assets))
}

func (h *AssetHandler) UpdateAssetStatus(c *gin.Context) {
	var payload request.UpdateAssetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssetPayload.HTTPStatus, errInvalidAssetPayload.ToHTTPError())
		return
	}

	asset, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("asset_id"), payload.Status)
	if err != nil {
		appErr := mapAssetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAsset(asset))
}

func (h *AssetHandler) MoveAsset(c *gin.Context) {
	var payload request.MoveAssetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssetPayload.HTTPStatus, errInvalidAssetPayload.ToHTTPError())
		return
	}

	asset, err := h.usecase.Move(c.Request.Context(), c.Param("asset_id"), payload.RoomID)
	if err != nil {
		appErr := mapAssetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAsset(asset))
}

func (h *AssetHandler) AssetQRLabel(c *gin.Context) {
	asset, err := h.usecase.GetByID(c.Request.Context(), c.Param("asset_id"))
	if err != nil {
		appErr := mapAssetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	png, err := export.AssetLabelPNG(h.baseURL, asset.ID)
	if err != nil {
		appErr := pkg.NewDomainError("QR_RENDER_FAILED", "Failed to render QR label", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func mapAssetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssetID),
		errors.Is(err, usecase.ErrInvalidAssetName),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidRoomID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssetNotFound):
		return pkg.NewDomainErrorSimple("ASSET_NOT_FOUND", "Asset not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRoomNotFound):
		return pkg.NewDomainErrorSimple("ROOM_NOT_FOUND", "Room not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTargetRoom):
		return pkg.NewDomainErrorSimple("INVALID_TARGET_ROOM", "Target room does not exist", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAllocationConflict):
		return pkg.NewDomainErrorSimple("ALLOCATION_CONFLICT", "Allocation failed, try again", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
