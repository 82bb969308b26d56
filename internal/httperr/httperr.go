package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Error      string   `json:"error"`
	ValidTypes []string `json:"valid_types,omitempty"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

// BadRequestWithHint attaches the accepted enum values alongside the error.
func BadRequestWithHint(c *gin.Context, message string, validTypes []string) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Error:      message,
		ValidTypes: validTypes,
	})
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}
