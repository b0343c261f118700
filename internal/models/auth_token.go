package models

import (
	"time"
)

// AuthToken 用户当前有效的认证凭证，注册时签发，登录时过期则重新签发
type AuthToken struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Token     string    `gorm:"type:text;not null" json:"token"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (AuthToken) TableName() string {
	return "auth_tokens"
}
