package handlers

import (
	"net/http"

	"aircnc/models"
	"aircnc/services/user"
	"aircnc/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account routes.
type UserHandler struct {
	Users user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users user.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// SaveUser handles PUT /users/:email. Accounts are upserted so repeated
// logins never duplicate a document.
func (h *UserHandler) SaveUser(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Param("email")

	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user payload")
		return
	}

	res, err := h.Users.Save(c.Request.Context(), email, u)
	if err != nil {
		logger.Error("Failed to save user", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save user")
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetUser handles GET /users/:email.
func (h *UserHandler) GetUser(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Param("email")

	u, err := h.Users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		logger.Error("Failed to fetch user", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, u)
}
