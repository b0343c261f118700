package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_@+.-]+$`)

// InitValidator 初始化验证器
func InitValidator() {
	validate = validator.New()

	// 注册自定义验证函数
	validate.RegisterValidation("username", validateUsername)
}

// GetValidator 获取验证器实例
func GetValidator() *validator.Validate {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// validateUsername 验证用户名格式
func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if len(username) < 1 || len(username) > 150 {
		return false
	}
	return usernamePattern.MatchString(username)
}

// IsValidEmail 验证邮箱格式
func IsValidEmail(email string) bool {
	return GetValidator().Var(email, "email") == nil
}

// IsValidUsername 验证用户名格式
func IsValidUsername(username string) bool {
	return GetValidator().Var(username, "username") == nil
}
