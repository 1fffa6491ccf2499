package httpHandler

import (
	"errors"
	"net/http"

	"home-monitor/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError serializes a domain error once, at the boundary, as
// {"detail": message}. Anything that is not an apperrors.Error is a storage
// or programming failure and surfaces as a generic 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"detail": appErr.Detail})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
}

func respondValidation(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": detail})
}
