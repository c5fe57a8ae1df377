package handlers

import (
	"net/http"

	"aircnc/services/auth"
	"aircnc/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the token-issuing endpoint.
type AuthHandler struct {
	Tokens auth.TokenService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(tokens auth.TokenService) *AuthHandler {
	return &AuthHandler{Tokens: tokens}
}

// IssueToken handles POST /jwt. The body is an identity object carrying the
// caller's email; the response is a one-hour signed token for it.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	logger := utils.GetLogger()

	var identity struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&identity); err != nil || identity.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "email is required")
		return
	}

	token, err := h.Tokens.Issue(identity.Email)
	if err != nil {
		logger.Error("Failed to sign token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
