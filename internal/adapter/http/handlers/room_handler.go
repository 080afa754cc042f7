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

var errInvalidRoomPayload = pkg.NewDomainErrorSimple("INVALID_ROOM_INPUT", "Invalid room payload", http.StatusBadRequest)

// RoomHandler handles HTTP requests for rooms.

type RoomHandler struct {
	usecase usecase.IRoomUseCase
}

func NewRoomHandler(uc usecase.IRoomUseCase) *RoomHandler {
	return &RoomHandler{usecase: uc}
}

func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapRoomError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRooms(rooms))
}

func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.usecase.GetByID(c.Request.Context(), c.Param("room_id"))
	if err != nil {
		appErr := mapRoomError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRoom(room))
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var payload request.RoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRoomPayload.HTTPStatus, errInvalidRoomPayload.ToHTTPError())
		return
	}

	room, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Manager)
	if err != nil {
		appErr := mapRoomError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromRoom(room))
}

func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var payload request.RoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRoomPayload.HTTPStatus, errInvalidRoomPayload.ToHTTPError())
		return
	}

	room, err := h.usecase.Update(c.Request.Context(), c.Param("room_id"), payload.Name, payload.Manager)
	if err != nil {
		appErr := mapRoomError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRoom(room))
}

func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("room_id")); err != nil {
		appErr := mapRoomError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapRoomError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRoomID),
		errors.Is(err, usecase.ErrInvalidRoomName),
		errors.Is(err, usecase.ErrInvalidRoomManager):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoomNotFound):
		return pkg.NewDomainErrorSimple("ROOM_NOT_FOUND", "Room not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
