package api

import "github.com/gin-gonic/gin"

// Envelope is the JSON response convention for every admin endpoint
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError carries a machine tag and a human message
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respond writes a success envelope
func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError writes a failure envelope for a service or engine error
func respondError(c *gin.Context, err error) {
	status, apiErr := mapError(err)
	c.JSON(status, Envelope{
		Success: false,
		Error:   apiErr,
	})
}

// respondBadRequest writes a failure envelope for a malformed request
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(400, Envelope{
		Success: false,
		Error:   &APIError{Code: "BadRequest", Message: message},
	})
}
