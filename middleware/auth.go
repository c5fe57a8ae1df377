package middleware

import (
	"net/http"
	"strings"

	"aircnc/services/auth"
	"aircnc/utils"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key under which RequireAuth stores the
// verified caller email.
const IdentityKey = "identityEmail"

// RequireAuth rejects any request without a valid bearer token. Missing,
// malformed and expired tokens all produce the same 401 body; the caller is
// never told which check failed.
func RequireAuth(tokens auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Error: true, Message: "unauthorized access"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Error: true, Message: "unauthorized access"})
			return
		}

		c.Set(IdentityKey, email)
		c.Next()
	}
}

// RequireOwner rejects requests where the authenticated identity does not
// match the owner email named by the given path parameter. The comparison is
// exact; case or whitespace differences are a mismatch. Must run after
// RequireAuth.
func RequireOwner(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.GetString(IdentityKey)
		if identity == "" || identity != c.Param(param) {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Error: true, Message: "Forbidden access"})
			return
		}
		c.Next()
	}
}
