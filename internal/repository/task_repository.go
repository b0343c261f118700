package repository

import (
	"todo-go/internal/models"

	"gorm.io/gorm"
)

// TaskRepository 任务数据访问层
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository 创建任务Repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create 创建任务
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// Save 保存任务
func (r *TaskRepository) Save(task *models.Task) error {
	return r.db.Save(task).Error
}

// GetByIDAndUser 根据ID获取用户自己的任务，所有权通过查询过滤实现
func (r *TaskRepository) GetByIDAndUser(id, userID uint) (*models.Task, error) {
	var task models.Task
	err := r.db.Preload("User").Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByUser 获取用户的任务列表
func (r *TaskRepository) ListByUser(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Preload("User").Where("user_id = ?", userID).Order("id").Find(&tasks).Error
	return tasks, err
}

// List 获取所有任务
func (r *TaskRepository) List() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Preload("User").Order("id").Find(&tasks).Error
	return tasks, err
}

// ExistsByTitle 检查标题是否已被其他任务占用，更新时排除自身
func (r *TaskRepository) ExistsByTitle(title string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Task{}).Where("title = ?", title)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Delete 删除任务
func (r *TaskRepository) Delete(id uint) error {
	return r.db.Delete(&models.Task{}, id).Error
}
