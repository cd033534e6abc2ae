package res

import "github.com/gin-gonic/gin"

// ErrorResponse is the JSON envelope for error replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error aborts the request with a sanitized error message.
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
