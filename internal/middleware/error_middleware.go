package middleware

import (
	"net/http"

	"lichess-gateway/internal/transport/httpdto"
	"lichess-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs errors attached to the gin context and renders the
// uniform failure body for any that reached the end of the chain unanswered.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if l != nil {
			l.Errorf("request error: %s", err.Error())
		}
		if !c.Writer.Written() {
			c.JSON(http.StatusOK, httpdto.Failure)
		}
	}
}
