package service

import (
	"errors"
	"fmt"

	"todo-go/internal/dto"
	"todo-go/internal/models"
	"todo-go/internal/repository"

	"gorm.io/gorm"
)

// 新任务的默认状态
const defaultTaskStatus = "Pending"

// TaskService 任务服务
type TaskService struct {
	taskRepo *repository.TaskRepository
}

// NewTaskService 创建任务服务
func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// Create 创建任务，校验截止日期和标题唯一性
func (s *TaskService) Create(userID uint, req *dto.TaskRequest) (*models.Task, error) {
	req.Normalize()

	errs := FieldErrors{}
	if req.Title == nil || *req.Title == "" {
		errs["title"] = msgFieldRequired
	}
	if req.Description == nil || *req.Description == "" {
		errs["description"] = msgFieldRequired
	}
	if req.Deadline == nil {
		errs["deadline"] = msgFieldRequired
	} else if req.Deadline.Before(dto.Today()) {
		// 等于今天允许，早于今天拒绝
		errs["deadline"] = msgDeadlineInPast
	}

	if _, ok := errs["title"]; !ok {
		exists, err := s.taskRepo.ExistsByTitle(*req.Title, 0)
		if err != nil {
			return nil, fmt.Errorf("检查标题失败: %w", err)
		}
		if exists {
			errs["title"] = msgDuplicateTaskTitle
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	task := &models.Task{
		UserID:      &userID,
		Title:       *req.Title,
		Description: *req.Description,
		Status:      defaultTaskStatus,
		Deadline:    req.Deadline.Time,
		IsActive:    true,
	}
	if req.Status != nil && *req.Status != "" {
		task.Status = *req.Status
	}
	if req.Color != nil {
		task.Color = *req.Color
	}

	if err := s.taskRepo.Create(task); err != nil {
		// 唯一索引兜底预检查与写入之间的并发竞争
		if isUniqueViolation(err) {
			return nil, FieldErrors{"title": msgDuplicateTaskTitle}
		}
		return nil, fmt.Errorf("创建任务失败: %w", err)
	}

	return s.taskRepo.GetByIDAndUser(task.ID, userID)
}

// Update 部分更新任务，未提供的字段保留原值
func (s *TaskService) Update(userID, taskID uint, req *dto.TaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByIDAndUser(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询任务失败: %w", err)
	}

	req.Normalize()

	errs := FieldErrors{}
	if req.Title != nil && *req.Title == "" {
		errs["title"] = msgFieldRequired
	}
	if req.Deadline != nil && req.Deadline.Before(dto.Today()) {
		errs["deadline"] = msgDeadlineInPast
	}

	// 合并后的标题重新校验唯一性，排除当前记录
	mergedTitle := task.Title
	if req.Title != nil && *req.Title != "" {
		mergedTitle = *req.Title
	}
	if _, ok := errs["title"]; !ok {
		exists, err := s.taskRepo.ExistsByTitle(mergedTitle, task.ID)
		if err != nil {
			return nil, fmt.Errorf("检查标题失败: %w", err)
		}
		if exists {
			errs["title"] = msgDuplicateTaskTitle
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	task.Title = mergedTitle
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Deadline != nil {
		task.Deadline = req.Deadline.Time
	}
	if req.Color != nil {
		task.Color = *req.Color
	}

	if err := s.taskRepo.Save(task); err != nil {
		if isUniqueViolation(err) {
			return nil, FieldErrors{"title": msgDuplicateTaskTitle}
		}
		return nil, fmt.Errorf("更新任务失败: %w", err)
	}

	return task, nil
}

// Get 获取用户自己的单个任务
func (s *TaskService) Get(userID, taskID uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByIDAndUser(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询任务失败: %w", err)
	}
	return task, nil
}

// List 获取用户的任务列表
func (s *TaskService) List(userID uint) ([]models.Task, error) {
	return s.taskRepo.ListByUser(userID)
}

// Delete 硬删除用户自己的任务
func (s *TaskService) Delete(userID, taskID uint) error {
	task, err := s.taskRepo.GetByIDAndUser(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("查询任务失败: %w", err)
	}
	return s.taskRepo.Delete(task.ID)
}

// Archive 归档任务，已归档则报错
func (s *TaskService) Archive(userID, taskID uint) (*models.Task, error) {
	return s.setActive(userID, taskID, false)
}

// Activate 激活任务，已激活则报错
func (s *TaskService) Activate(userID, taskID uint) (*models.Task, error) {
	return s.setActive(userID, taskID, true)
}

// setActive 切换任务的激活状态
func (s *TaskService) setActive(userID, taskID uint, active bool) (*models.Task, error) {
	task, err := s.taskRepo.GetByIDAndUser(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询任务失败: %w", err)
	}

	if task.IsActive == active {
		if active {
			return nil, ErrAlreadyActive
		}
		return nil, ErrAlreadyArchived
	}

	task.IsActive = active
	if err := s.taskRepo.Save(task); err != nil {
		return nil, fmt.Errorf("更新任务失败: %w", err)
	}

	return task, nil
}
