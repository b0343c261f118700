package dto

import (
	"time"

	"todo-go/internal/models"
	"todo-go/internal/utils"
)

// TaskRequest 任务创建/更新请求，指针字段区分未提供与空值，支持部分更新
type TaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Deadline    *Date   `json:"deadline"`
	Color       *string `json:"color"`
}

// Normalize 清洗输入字段
func (r *TaskRequest) Normalize() {
	r.Title = utils.StripPtr(r.Title)
	r.Description = utils.StripPtr(r.Description)
	r.Status = utils.StripPtr(r.Status)
	r.Color = utils.StripPtr(r.Color)
}

// TaskResponse 任务响应
type TaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Deadline    Date      `json:"deadline"`
	Color       string    `json:"color"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	User        *string   `json:"user"`
	IsActive    bool      `json:"is_active"`
}

// NewTaskResponse 从模型构建任务响应
func NewTaskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Deadline:    NewDate(task.Deadline),
		Color:       task.Color,
		Created:     task.CreatedAt,
		Modified:    task.UpdatedAt,
		User:        task.OwnerUsername(),
		IsActive:    task.IsActive,
	}
}

// NewTaskResponses 从模型列表构建任务响应列表
func NewTaskResponses(tasks []models.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, NewTaskResponse(&tasks[i]))
	}
	return responses
}
