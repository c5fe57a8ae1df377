package handlers

import (
	"errors"
	"net/http"

	"aircnc/services/payment"
	"aircnc/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves payment-intent creation.
type PaymentHandler struct {
	Broker payment.Broker
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(broker payment.Broker) *PaymentHandler {
	return &PaymentHandler{Broker: broker}
}

// CreatePaymentIntent handles POST /create-payment-intent. A missing or
// non-positive price is an explicit 400, never a dropped response.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "price is required")
		return
	}

	clientSecret, err := h.Broker.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, payment.ErrMissingPrice) {
			utils.JSONError(c, http.StatusBadRequest, "price is required")
			return
		}
		logger.Error("Failed to create payment intent", zap.Float64("price", req.Price), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create payment intent")
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
