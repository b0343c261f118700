package handler

import (
	"net/http"

	"todo-go/internal/dto"
	"todo-go/internal/middleware"
	"todo-go/internal/service"
	"todo-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// TaskHandler 任务处理器
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List 获取当前用户的任务列表
// GET /task
func (h *TaskHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	tasks, err := h.taskService.List(userID)
	if err != nil {
		utils.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}

// Get 获取当前用户的单个任务
// GET /task/:id
func (h *TaskHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c, "Task not found")
		return
	}

	task, err := h.taskService.Get(userID, id)
	if err != nil {
		respondError(c, err, "Task not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

// Create 创建任务
// POST /task
func (h *TaskHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.MalformedJSON(c)
		return
	}

	task, err := h.taskService.Create(userID, &req)
	if err != nil {
		respondError(c, err, "Task not found")
		return
	}

	utils.Success(c, http.StatusCreated, "Successfully added a new task", dto.NewTaskResponse(task))
}

// Update 部分更新任务
// PUT|PATCH /task/:id
func (h *TaskHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c, "Task not found")
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.MalformedJSON(c)
		return
	}

	task, err := h.taskService.Update(userID, id, &req)
	if err != nil {
		respondError(c, err, "Task not found")
		return
	}

	utils.Success(c, http.StatusCreated, "Task successfully updated", dto.NewTaskResponse(task))
}

// Delete 删除任务
// DELETE /task/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c, "Task not found")
		return
	}

	if err := h.taskService.Delete(userID, id); err != nil {
		respondError(c, err, "Task not found")
		return
	}

	utils.SuccessMessage(c, http.StatusOK, "Task successfully deleted")
}

// Archive 归档任务
// PATCH /tasks/archive/:id
func (h *TaskHandler) Archive(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c, "Task not found")
		return
	}

	task, err := h.taskService.Archive(userID, id)
	if err != nil {
		respondError(c, err, "Task not found")
		return
	}

	utils.Success(c, http.StatusOK, "Task archived successfully", dto.NewTaskResponse(task))
}

// Activate 激活任务
// PATCH /tasks/activate/:id
func (h *TaskHandler) Activate(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c, "Task not found")
		return
	}

	task, err := h.taskService.Activate(userID, id)
	if err != nil {
		respondError(c, err, "Task not found")
		return
	}

	utils.Success(c, http.StatusOK, "Task activated successfully", dto.NewTaskResponse(task))
}
