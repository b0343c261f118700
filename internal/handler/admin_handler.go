package handler

import (
	"net/http"

	"todo-go/internal/dto"
	"todo-go/internal/service"
	"todo-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler 管理员处理器
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler 创建管理员处理器
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// AllTasks 获取所有用户的任务
// GET /all_tasks
func (h *AdminHandler) AllTasks(c *gin.Context) {
	tasks, err := h.adminService.ListAllTasks()
	if err != nil {
		utils.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}

// AllNotes 获取所有用户的笔记
// GET /all_notes
func (h *AdminHandler) AllNotes(c *gin.Context) {
	notes, err := h.adminService.ListAllNotes()
	if err != nil {
		utils.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.NewNoteResponses(notes))
}

// AllUsers 获取所有用户
// GET /all_users
func (h *AdminHandler) AllUsers(c *gin.Context) {
	users, err := h.adminService.ListAllUsers()
	if err != nil {
		utils.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// SetAsAdmin 将用户提升为管理员
// PATCH /set_as_admin/:id
func (h *AdminHandler) SetAsAdmin(c *gin.Context) {
	h.setAdminStatus(c, true, "User successfully set as admin")
}

// SetAsNormalUser 将用户降级为普通用户
// PATCH /set_as_normal_user/:id
func (h *AdminHandler) SetAsNormalUser(c *gin.Context) {
	h.setAdminStatus(c, false, "User successfully set as normal user")
}

// setAdminStatus 切换目标用户的管理员标志
func (h *AdminHandler) setAdminStatus(c *gin.Context, desired bool, message string) {
	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c, "User not found")
		return
	}

	user, err := h.adminService.SetAdminStatus(id, desired)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	utils.Success(c, http.StatusOK, message, dto.NewUserResponse(user))
}
