package middleware

import (
	"net/http"

	"kakao-gateway/internal/transport/httpdto"
	"kakao-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the last-resort responder: anything a handler left on
// the context without writing a response becomes a generic 500.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if l != nil {
			l.Errorf("unhandled error: %s", err.Error())
		}
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorWithDetail("Internal Server Error", err.Error()))
		}
	}
}
