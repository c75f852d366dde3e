package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform failure body: {success: false, error: <details or
// null>, message: <human readable>}. The error field is only populated for
// validation failures (a list of field errors); internal causes are never
// echoed to the client.
type Envelope struct {
	Success bool        `json:"success"`
	Error   interface{} `json:"error"`
	Message string      `json:"message"`
}

// HandleError maps any error to the failure envelope with a status code
// matching its classification. Unknown errors become a generic 500.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	message := appErr.Message
	if appErr.HTTPCode >= http.StatusInternalServerError {
		// Hide internal detail from clients; the cause is logged upstream.
		message = "internal server error"
	}

	c.JSON(appErr.HTTPCode, Envelope{
		Success: false,
		Error:   appErr.Details,
		Message: message,
	})
}
