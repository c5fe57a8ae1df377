package handlers

import (
	"net/http"

	"aircnc/models"
	"aircnc/services/room"
	"aircnc/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler serves room listing routes.
type RoomHandler struct {
	Rooms room.RoomService
}

// NewRoomHandler creates a RoomHandler.
func NewRoomHandler(rooms room.RoomService) *RoomHandler {
	return &RoomHandler{Rooms: rooms}
}

// GetRooms handles GET /rooms.
func (h *RoomHandler) GetRooms(c *gin.Context) {
	logger := utils.GetLogger()

	rooms, err := h.Rooms.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rooms", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom handles GET /room/:id.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	r, err := h.Rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to fetch room", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch room")
		return
	}
	c.JSON(http.StatusOK, r)
}

// GetRoomsByHost handles GET /rooms/:email. The route is guarded: the caller
// must hold a valid token whose email matches :email exactly.
func (h *RoomHandler) GetRoomsByHost(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Param("email")

	rooms, err := h.Rooms.GetByHostEmail(c.Request.Context(), email)
	if err != nil {
		logger.Error("Failed to list host rooms", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// CreateRoom handles POST /rooms.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	logger := utils.GetLogger()

	var r models.Room
	if err := c.ShouldBindJSON(&r); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room payload")
		return
	}

	res, err := h.Rooms.Create(c.Request.Context(), r)
	if err != nil {
		logger.Error("Failed to create room", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room")
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateRoom handles PUT /rooms/:id.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var r models.Room
	if err := c.ShouldBindJSON(&r); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room payload")
		return
	}

	res, err := h.Rooms.Upsert(c.Request.Context(), id, r)
	if err != nil {
		logger.Error("Failed to update room", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room")
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteRoom handles DELETE /rooms/:id.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	res, err := h.Rooms.Delete(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to delete room", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	c.JSON(http.StatusOK, res)
}
