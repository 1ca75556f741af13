package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// requestID propagates or generates a per-request id so swallowed-failure
// logs can be correlated with app-side reports.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("requestId", id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}
