package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body 统一响应信封，仅用于非记录型接口
type Body struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Body{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusInternalServerError, Body{
		Code:    1,
		Message: message,
		Data:    data,
	})
}
