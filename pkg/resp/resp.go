package resp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tableorder/services"
	"tableorder/utils"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg, "kind": "validation"})
}
func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg, "kind": "unauthorized"})
}

// Error maps a service error to its status code and kind. The request id,
// when the logger middleware assigned one, is echoed so a failure can be
// matched to its log line.
func Error(c *gin.Context, err error) {
	status, kind := classify(err)
	body := gin.H{"ok": false, "error": err.Error(), "kind": kind}
	if id := utils.CurrentRequestID(c); id != "" {
		body["requestId"] = id
	}

	var ve *services.ValidationError
	if errors.As(err, &ve) {
		body["field"] = ve.Field
	}
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		body["error"] = "internal error"
	}
	c.JSON(status, body)
}

func classify(err error) (int, string) {
	var (
		ve *services.ValidationError
		it *services.InvalidTransitionError
		nf *services.NotFoundError
	)
	switch {
	case errors.Is(err, services.ErrTableBusy):
		return http.StatusConflict, "table_busy"
	case errors.As(err, &ve):
		return http.StatusBadRequest, "validation"
	case errors.As(err, &it):
		return http.StatusConflict, "invalid_transition"
	case errors.As(err, &nf):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
