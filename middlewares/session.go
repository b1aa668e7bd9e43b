package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tableorder/pkg/resp"
	"tableorder/utils"
)

// SessionMiddleware requires a customer session token, read from the
// Authorization header or the token query parameter.
func SessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if h := c.GetHeader("Authorization"); tokenStr == "" && strings.HasPrefix(h, "Bearer ") {
			tokenStr = strings.TrimPrefix(h, "Bearer ")
		}
		if tokenStr == "" {
			resp.Unauthorized(c, "missing session token")
			return
		}

		claims, err := utils.ParseSessionToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "invalid session token")
			return
		}
		c.Set(utils.SessionIDKey, claims.SessionID)
		c.Next()
	}
}
