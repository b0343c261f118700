package models

import (
	"time"
)

// Task 任务模型。标题全局唯一，唯一索引兜底并发写入
type Task struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      *uint     `gorm:"index" json:"user_id"` // 可为空，用户删除后任务成为孤儿
	Title       string    `gorm:"uniqueIndex;size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:50;default:'Pending'" json:"status"`
	Deadline    time.Time `json:"deadline"`
	Color       string    `gorm:"size:50" json:"color"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created"`
	UpdatedAt   time.Time `json:"modified"`

	// 关联
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Task) TableName() string {
	return "tasks"
}

// OwnerUsername 获取所属用户名，孤儿任务返回nil
func (t *Task) OwnerUsername() *string {
	if t.User == nil {
		return nil
	}
	return &t.User.Username
}
