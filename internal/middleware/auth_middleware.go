package middleware

import (
	"net/http"

	"lichess-gateway/internal/services"
	"lichess-gateway/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards an endpoint with the custom `token` request header.
// A missing or invalid token answers HTTP 200 with {"success":false}; the
// status-code-agnostic contract is part of the public API.
func AuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := service.ParseAccessToken(c.GetHeader("token"))
		if err != nil {
			c.JSON(http.StatusOK, httpdto.Failure)
			c.Abort()
			return
		}

		ctx := services.WithUserContext(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
