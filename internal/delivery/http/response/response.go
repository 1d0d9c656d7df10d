package response

import (
	"github.com/gin-gonic/gin"
)

// The API speaks two fixed JSON shapes: {"message": ...} for success and
// {"error": ...} for failure. Clients branch on the HTTP status and surface
// the string as-is.

// MessageBody is the success payload shape.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is the failure payload shape.
type ErrorBody struct {
	Error string `json:"error"`
}

// Message sends a success response
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageBody{Message: message})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}
