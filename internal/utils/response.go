package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse 成功响应格式
type MessageResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse 单条错误响应格式
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldErrorResponse 字段级错误响应格式
type FieldErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// Success 成功响应，携带受影响实体
func Success(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, MessageResponse{
		Message: message,
		Details: details,
	})
}

// SuccessMessage 成功响应，仅消息
func SuccessMessage(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{
		Message: message,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error: message,
	})
}

// FieldErrors 字段级验证错误响应
func FieldErrors(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusBadRequest, FieldErrorResponse{
		Errors: errs,
	})
}

// MalformedJSON 请求体JSON解析失败响应
func MalformedJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"result":  "error",
		"message": "JSON decoding error",
	})
}

// Unauthorized 401错误
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403错误
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404错误
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500错误
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
