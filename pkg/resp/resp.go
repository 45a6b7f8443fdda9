package resp

import (
	"errors"
	"log"
	"net/http"

	"srvices-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps a service error onto the right HTTP status. Gateway failures
// are logged and surfaced as a generic 500; the request never panics out.
func Error(c *gin.Context, err error) {
	var (
		ve *apperr.ValidationError
		te *apperr.InvalidTransitionError
		ae *apperr.ApprovalBlockedError
		ce *apperr.ConflictError
		ge *apperr.GatewayError
	)
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Msg)
	case errors.As(err, &te):
		Conflict(c, te.Error())
	case errors.As(err, &ae):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": ae.Error(), "cause": ae.Cause})
	case errors.As(err, &ce):
		Conflict(c, ce.Msg)
	case errors.Is(err, apperr.ErrConfirmationRequired):
		Conflict(c, err.Error())
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, "not found")
	case errors.As(err, &ge):
		log.Printf("gateway error: %v", ge)
		ServerError(c, errors.New("data access failed"))
	default:
		ServerError(c, err)
	}
}
