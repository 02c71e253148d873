package handlers

import (
	"net/http"

	"farekiosk/internal/domain"
	"farekiosk/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// NoRoute answers unknown routes with the standard error body.
func NoRoute(c *gin.Context) {
	respondError(c, http.StatusNotFound, "not_found", "route not found", gin.H{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
