package middleware

import (
	"quoteportal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxCorrelationID = "correlation_id"

// CorrelationID reuses the caller's X-Correlation-Id or generates one, echoes
// it on the response and stores it on the request context.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(pkg.CorrelationHeader)
		if cid == "" {
			cid = uuid.NewString()
		}

		c.Header(pkg.CorrelationHeader, cid)
		c.Set(ctxCorrelationID, cid)
		c.Request = c.Request.WithContext(pkg.WithCorrelationID(c.Request.Context(), cid))
		c.Next()
	}
}

func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ctxCorrelationID)
}
