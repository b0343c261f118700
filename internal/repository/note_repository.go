package repository

import (
	"todo-go/internal/models"

	"gorm.io/gorm"
)

// NoteRepository 笔记数据访问层
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository 创建笔记Repository
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create 创建笔记
func (r *NoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// Save 保存笔记
func (r *NoteRepository) Save(note *models.Note) error {
	return r.db.Save(note).Error
}

// GetByIDAndUser 根据ID获取用户自己的笔记
func (r *NoteRepository) GetByIDAndUser(id, userID uint) (*models.Note, error) {
	var note models.Note
	err := r.db.Preload("User").Where("id = ? AND user_id = ?", id, userID).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// ListByUser 获取用户的笔记列表
func (r *NoteRepository) ListByUser(userID uint) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Preload("User").Where("user_id = ?", userID).Order("id").Find(&notes).Error
	return notes, err
}

// List 获取所有笔记
func (r *NoteRepository) List() ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Preload("User").Order("id").Find(&notes).Error
	return notes, err
}

// ExistsByTitle 检查标题是否已被其他笔记占用，更新时排除自身
func (r *NoteRepository) ExistsByTitle(title string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Note{}).Where("title = ?", title)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Delete 删除笔记
func (r *NoteRepository) Delete(id uint) error {
	return r.db.Delete(&models.Note{}, id).Error
}
