package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/felipecouto0101/FastFeet-Deliveryman/pkg/helpers"
	"github.com/felipecouto0101/FastFeet-Deliveryman/pkg/response"
)

// Auth validates the Authorization bearer token and sets the token subject
// in the Gin context. Tokens are issued by an external identity service;
// this service only validates them.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}
		c.Set("subject", claims.Subject)
		c.Next()
	}
}
