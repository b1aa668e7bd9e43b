package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tableorder/pkg/resp"
)

// idParam reads :id; on failure it has already written a 400.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
