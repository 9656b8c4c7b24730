package xerr

import (
	"fmt"
	"net/http"
)

// CodeError 自定义错误结构，Code 与 HTTP 状态码对齐
type CodeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error 实现 error 接口
func (e *CodeError) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

// Status 返回写回客户端的 HTTP 状态码，未知 Code 统一按 500 处理
func (e *CodeError) Status() int {
	if http.StatusText(e.Code) == "" {
		return http.StatusInternalServerError
	}
	return e.Code
}

// New 创建新的 CodeError
func New(code int, msg string) *CodeError {
	return &CodeError{Code: code, Message: msg}
}

// 常用通用错误码
const (
	OK                  = http.StatusOK
	BadRequest          = http.StatusBadRequest
	TooManyRequests     = http.StatusTooManyRequests
	InternalServerError = http.StatusInternalServerError
	BadGateway          = http.StatusBadGateway
)

// 常用预定义错误
var (
	ErrServerError = New(InternalServerError, "系统错误，请联系工作人员")
	ErrParam       = New(BadRequest, "参数错误")
	ErrUpstream    = New(BadGateway, "上游模型服务调用失败")
)
