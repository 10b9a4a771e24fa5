package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestID propagates X-Request-ID, generating one when the client sent none.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHdr)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHdr, id)
		c.Next()
	}
}
