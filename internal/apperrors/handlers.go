package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleError writes an AppError (or a generic 500) to the response.
// The body always carries an "error" field; details are included for
// validation failures so clients can highlight fields.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if As(err, &appErr) {
		body := gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		}
		if appErr.Details != nil {
			body["details"] = appErr.Details
		}
		c.JSON(appErr.HTTPCode, body)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  CodeInternalError,
	})
}
