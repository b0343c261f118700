package service

import (
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// 业务错误，处理器层负责映射到HTTP状态码
var (
	// ErrNotFound 记录不存在或不属于调用者
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyArchived 任务已是归档状态
	ErrAlreadyArchived = errors.New("Task is already archived")
	// ErrAlreadyActive 任务已是激活状态
	ErrAlreadyActive = errors.New("Task is already active")
	// ErrAlreadyAdmin 用户已是管理员
	ErrAlreadyAdmin = errors.New("User is already an admin")
	// ErrAlreadyNormalUser 用户已是普通用户
	ErrAlreadyNormalUser = errors.New("User is already a normal user")
	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = errors.New("Unable to log in with provided credentials")
	// ErrDuplicateUsername 用户名已存在
	ErrDuplicateUsername = errors.New("Username already exists")
)

// 字段级错误消息
const (
	msgFieldRequired       = "This field is required."
	msgInvalidEmail        = "Enter a valid email address."
	msgInvalidUsername     = "Enter a valid username."
	msgPasswordMismatch    = "Sorry, the password did not match"
	msgDeadlineInPast      = "Deadline cannot be in the past"
	msgDuplicateTaskTitle  = "Operation failed, there is an existing task with the same title."
	msgDuplicateNoteTitle  = "Operation failed, there is an existing note with the same title."
)

// FieldErrors 字段级验证错误集合，按字段聚合
type FieldErrors map[string]string

// Error 实现error接口
func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// isUniqueViolation 判断存储层唯一约束冲突
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
