package response

import "github.com/gin-gonic/gin"

// RespondJSON writes a StandardApiResponse. Controllers pass nil data for
// error responses and nil errors for successful ones.
func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}
