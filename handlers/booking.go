package handlers

import (
	"net/http"

	"aircnc/models"
	"aircnc/services/booking"
	"aircnc/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking routes and the room status flip.
type BookingHandler struct {
	Bookings booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(bookings booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// CreateBooking handles POST /bookings. The caller is trusted to have
// confirmed payment already; the body carries the resulting transactionId.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := utils.GetLogger()

	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload")
		return
	}

	res, err := h.Bookings.Create(c.Request.Context(), b)
	if err != nil {
		logger.Error("Failed to create booking", zap.String("transactionId", b.TransactionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteBooking handles DELETE /bookings/:id. Deleting a nonexistent id is
// not an error; the result reports zero matched documents.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	res, err := h.Bookings.Delete(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to delete booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete booking")
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetGuestBookings handles GET /bookings?email=. A missing email yields an
// empty array.
func (h *BookingHandler) GetGuestBookings(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Query("email")

	bookings, err := h.Bookings.ListByGuest(c.Request.Context(), email)
	if err != nil {
		logger.Error("Failed to list guest bookings", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetHostBookings handles GET /bookings/host?email=.
func (h *BookingHandler) GetHostBookings(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Query("email")

	bookings, err := h.Bookings.ListByHost(c.Request.Context(), email)
	if err != nil {
		logger.Error("Failed to list host bookings", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateRoomStatus handles PATCH /rooms/status/:id. The flag flip is a
// separate caller-driven step, not atomic with booking creation.
func (h *BookingHandler) UpdateRoomStatus(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		Status bool `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	res, err := h.Bookings.SetRoomStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		logger.Error("Failed to update room status", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room status")
		return
	}
	c.JSON(http.StatusOK, res)
}
