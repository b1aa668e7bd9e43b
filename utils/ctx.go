package utils

import "github.com/gin-gonic/gin"

const (
	SessionIDKey = "sessionId"
	RequestIDKey = "requestId"
)

func CurrentSessionID(c *gin.Context) string {
	if v, ok := c.Get(SessionIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
