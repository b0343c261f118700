package handler

import (
	"net/http"

	"todo-go/internal/dto"
	"todo-go/internal/service"
	"todo-go/internal/utils"
	"todo-go/pkg/redislimiter"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService *service.AuthService
	limiter     *redislimiter.Limiter // 可为nil，未配置Redis时禁用限流
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService *service.AuthService, limiter *redislimiter.Limiter) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		limiter:     limiter,
	}
}

// Register 用户注册
// POST /users/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.MalformedJSON(c)
		return
	}

	_, token, err := h.authService.Register(&req)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "Successfully registered a new user!",
		Token:   token,
	})
}

// Login 用户登录，换取Bearer Token
// POST /users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.MalformedJSON(c)
		return
	}
	req.Normalize()

	limiterKey := req.Username + ":" + c.ClientIP()
	if h.limiter != nil {
		allowed, err := h.limiter.Allow(c.Request.Context(), limiterKey)
		if err == nil && !allowed {
			utils.Error(c, http.StatusTooManyRequests, "Too many login attempts, please try again later")
			return
		}
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	// 登录成功后清除失败计数
	if h.limiter != nil {
		_ = h.limiter.Reset(c.Request.Context(), limiterKey)
	}

	c.JSON(http.StatusOK, resp)
}
