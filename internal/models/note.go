package models

import (
	"time"
)

// Note 笔记模型。对外字段名content映射description
type Note struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      *uint     `gorm:"index" json:"user_id"`
	Title       string    `gorm:"uniqueIndex;size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Color       string    `gorm:"size:50" json:"color"`
	CreatedAt   time.Time `json:"created"`
	UpdatedAt   time.Time `json:"modified"`

	// 关联
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Note) TableName() string {
	return "notes"
}

// OwnerUsername 获取所属用户名
func (n *Note) OwnerUsername() *string {
	if n.User == nil {
		return nil
	}
	return &n.User.Username
}
