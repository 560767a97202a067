package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/models"
	"github.com/opencoord/hive/pkg/services"
)

// respondError maps service errors to HTTP statuses and the uniform
// envelope. Guard rejections carry the machine-readable guard tag.
func respondError(c *gin.Context, err error) {
	envelope := models.ToolEnvelope{Success: false, Error: err.Error()}

	status := http.StatusInternalServerError
	switch {
	case services.IsValidationError(err), errors.Is(err, services.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrAlreadyExists), errors.Is(err, services.ErrConcurrentModification):
		status = http.StatusConflict
	case errors.Is(err, services.ErrDeferredTimeout):
		status = http.StatusRequestTimeout
	case errors.Is(err, logstore.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, logstore.ErrInvalidEvent):
		status = http.StatusBadRequest
	}
	if guard := services.GuardTag(err); guard != "" {
		status = http.StatusForbidden
		envelope.Guard = guard
	}

	c.JSON(status, envelope)
}
