// README: Shared helpers for JSON errors and sentinel-error mapping.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"railway/internal/modules/profile"
	"railway/internal/store"
)

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// writeServiceError maps module sentinel errors to HTTP statuses. Storage
// failures are 503: the caller may retry, nothing was committed.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, profile.ErrUsernameTaken):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrStorage):
		writeError(c, http.StatusServiceUnavailable, "storage unavailable")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
