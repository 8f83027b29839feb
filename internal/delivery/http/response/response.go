package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON envelope
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Count     *int        `json:"count,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Errors    interface{} `json:"errors,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// SuccessList sends a success response carrying a top-level element count
func SuccessList(c *gin.Context, code int, count int, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Count:     &count,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response; detail lands in the envelope's "error"
// field and is only populated outside production
func Error(c *gin.Context, code int, message string, detail interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     detail,
		RequestID: requestID(c),
	})
}

// ValidationFailed sends the per-field validation errors array
func ValidationFailed(c *gin.Context, code int, errs interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   "Validation failed",
		Errors:    errs,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
