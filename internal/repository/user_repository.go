package repository

import (
	"todo-go/internal/models"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问层
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户Repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 创建用户
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Save 保存用户
func (r *UserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

// GetByID 根据ID获取用户
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername 根据用户名获取用户
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAdmin 获取任意一个管理员
func (r *UserRepository) GetAdmin() (*models.User, error) {
	var user models.User
	err := r.db.Where("is_superuser = ?", true).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List 获取所有用户
func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}
