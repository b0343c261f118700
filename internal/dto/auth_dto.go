package dto

import (
	"todo-go/internal/utils"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// Normalize 清洗输入字段
func (r *RegisterRequest) Normalize() {
	r.Username = utils.Strip(r.Username)
	r.Email = utils.Strip(r.Email)
	r.FirstName = utils.Strip(r.FirstName)
	r.LastName = utils.Strip(r.LastName)
	r.Password = utils.Strip(r.Password)
	r.Password2 = utils.Strip(r.Password2)
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Normalize 清洗输入字段
func (r *LoginRequest) Normalize() {
	r.Username = utils.Strip(r.Username)
	r.Password = utils.Strip(r.Password)
}

// LoginResponse 登录响应，created表示本次是否签发了新Token
type LoginResponse struct {
	Token       string `json:"token"`
	Created     bool   `json:"created"`
	IsSuperuser bool   `json:"is_superuser"`
}
