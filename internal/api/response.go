// ABOUTME: JSON response helpers and error-to-status mapping.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harperreed/weekly/internal/logger"
	"github.com/harperreed/weekly/internal/models"
	"github.com/harperreed/weekly/internal/storage"
)

type errorBody struct {
	Error string `json:"error"`
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorBody{Error: msg})
}

// fail maps storage and validation errors to HTTP statuses.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrDuplicateWeek):
		abort(c, http.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		abort(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidReport):
		abort(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		abort(c, http.StatusInternalServerError, "internal error")
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
