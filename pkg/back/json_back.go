package back

import (
	"errors"
	"net/http"

	"ResearchAssistant/pkg/xerr"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Result 统一返回入口
func Result(c *gin.Context, data interface{}, err error) {
	if err == nil {
		Success(c, data)
		return
	}

	// 判断是否为自定义错误
	var e *xerr.CodeError
	if errors.As(err, &e) {
		Error(c, e.Code, e.Message)
		return
	}

	// 默认为系统错误
	Error(c, xerr.ErrServerError.Code, xerr.ErrServerError.Message)
}

// Success 成功返回
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    xerr.OK,
		Message: "Success",
		Data:    data,
	})
}

// Error 错误返回，HTTP 状态码与 code 保持一致
func Error(c *gin.Context, code int, message string) {
	c.JSON(xerr.New(code, message).Status(), Response{
		Code:    code,
		Message: message,
	})
}

// Text 纯文本返回，research 接口沿用旧的字符串协议
func Text(c *gin.Context, body string) {
	c.String(http.StatusOK, body)
}
