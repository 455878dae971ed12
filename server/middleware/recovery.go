package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/RazorNd/telegram-login/logger"
)

// Recovery returns middleware that recovers from panics and logs the stack,
// so a handler bug turns into a 500 instead of taking the process down.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered", map[string]any{
					logger.FieldError: fmt.Sprintf("%v", err),
					"stack":           string(debug.Stack()),
				})
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
