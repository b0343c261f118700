package dto

import (
	"time"

	"todo-go/internal/models"
)

// UserResponse 用户响应，永不包含密码
type UserResponse struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	IsSuperuser bool      `json:"is_superuser"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
}

// NewUserResponse 从模型构建用户响应
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		IsSuperuser: user.IsSuperuser,
		Created:     user.CreatedAt,
		Modified:    user.UpdatedAt,
	}
}

// NewUserResponses 从模型列表构建用户响应列表
func NewUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, NewUserResponse(&users[i]))
	}
	return responses
}
