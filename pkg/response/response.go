package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/domain"
)

// The API emits the flat JSON bodies the frontend consumes: payloads like
// {"todos": [...]} or {"todo": {...}} on success and {"error": "..."} on
// failure.

// JSON writes body with the given status.
func JSON(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// Error writes a flat error body.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// StatusFor maps a domain error kind to its HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// DomainError maps err to a status code and writes the error body. Domain
// error kinds surface their message; anything unexpected is logged and
// returned as a generic 500 so internals never leak to the client.
func DomainError(c *gin.Context, logger *logrus.Logger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		Error(c, status, "internal server error")
		return
	}
	Error(c, status, err.Error())
}
