package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the map shape used for JSON bodies.
type Response map[string]interface{}

// Messages returned to clients. They are deliberately generic.
const (
	MsgUnauthorized = "Unauthorized"
	MsgLoginError   = "Login error, please try again"
	MsgInvalidBody  = "Invalid request body"
	MsgEmailInUse   = "Email already in use"
)

// JSON writes data with the given status.
func JSON(c *gin.Context, status int, data Response) {
	if data == nil {
		data = Response{}
	}
	c.JSON(status, data)
}

// Error writes {"msg": msg} with the given status.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

// AbortUnauthorized stops the chain with a uniform 401.
func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": MsgUnauthorized})
}

// ServerError writes an empty 500; the cause is logged by the caller.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{})
}
