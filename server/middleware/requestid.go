package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RazorNd/telegram-login/logger"
)

// requestIDHeader carries the request id between client and server.
const requestIDHeader = "X-Request-Id"

// RequestID tags every request with an identifier so a rejected login can be
// matched to its log entries. A caller-supplied X-Request-Id is kept;
// otherwise a fresh UUID is issued. The id is stored in the gin context
// under logger.FieldRequestID, where RequestLogger picks it up, and echoed
// in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(logger.FieldRequestID, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
