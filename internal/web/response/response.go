package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  any  `json:"extras"`
}

func NewResponse(success bool, code int, extras any) Response {
	return Response{
		Success: success,
		Code:    code,
		Extras:  extras,
	}
}

// SuccessResponse returns a JSON response with a success message with no type limitation
func SuccessResponse(c *gin.Context, extras any) {
	c.JSON(http.StatusOK, NewResponse(true, http.StatusOK, extras))
}

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, NewResponse(false, code, gin.H{"message": message}))
}

// Error writes a failure in the form the client asked for: the envelope for
// JSON clients and a plain error page otherwise.
func Error(c *gin.Context, code int, message string) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		ErrorResponse(c, code, message)
		return
	}
	c.HTML(code, "error.html", gin.H{"Title": http.StatusText(code), "Code": code, "Message": message})
}
