// Package handlers contains HTTP request handlers for the clinic front-desk service.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salman-gigabit/PatientQueueBackend/internal/repository"
)

// RespondError writes a JSON error body with the given status.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// LogAndRespondError logs the underlying error and responds with a stable
// client-facing message that does not leak internals.
func LogAndRespondError(c *gin.Context, status int, err error, message string) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	RespondError(c, status, message)
}

// RespondStorageError classifies an unexpected service error: 503 when the
// service is running without storage, 500 otherwise.
func RespondStorageError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	if errors.Is(err, repository.ErrStorageUnavailable) {
		status = http.StatusServiceUnavailable
	}
	LogAndRespondError(c, status, err, message)
}
