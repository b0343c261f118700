package service

import (
	"errors"
	"fmt"

	"todo-go/internal/models"
	"todo-go/internal/repository"

	"gorm.io/gorm"
)

// AdminService 管理员服务，跨用户列表和角色切换
type AdminService struct {
	userRepo *repository.UserRepository
	taskRepo *repository.TaskRepository
	noteRepo *repository.NoteRepository
}

// NewAdminService 创建管理员服务
func NewAdminService(
	userRepo *repository.UserRepository,
	taskRepo *repository.TaskRepository,
	noteRepo *repository.NoteRepository,
) *AdminService {
	return &AdminService{
		userRepo: userRepo,
		taskRepo: taskRepo,
		noteRepo: noteRepo,
	}
}

// ListAllTasks 获取所有用户的任务
func (s *AdminService) ListAllTasks() ([]models.Task, error) {
	return s.taskRepo.List()
}

// ListAllNotes 获取所有用户的笔记
func (s *AdminService) ListAllNotes() ([]models.Note, error) {
	return s.noteRepo.List()
}

// ListAllUsers 获取所有用户
func (s *AdminService) ListAllUsers() ([]models.User, error) {
	return s.userRepo.List()
}

// SetAdminStatus 设置用户的管理员标志，已处于目标状态则报错
func (s *AdminService) SetAdminStatus(userID uint, desired bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	if user.IsSuperuser == desired {
		if desired {
			return nil, ErrAlreadyAdmin
		}
		return nil, ErrAlreadyNormalUser
	}

	user.IsSuperuser = desired
	if err := s.userRepo.Save(user); err != nil {
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}

	return user, nil
}
