package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "empty_body", "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "request body is not valid JSON", err.Error())
		return false
	}
	return true
}
