package service

import (
	"errors"
	"fmt"

	"todo-go/internal/dto"
	"todo-go/internal/models"
	"todo-go/internal/repository"

	"gorm.io/gorm"
)

// NoteService 笔记服务
type NoteService struct {
	noteRepo *repository.NoteRepository
}

// NewNoteService 创建笔记服务
func NewNoteService(noteRepo *repository.NoteRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

// Create 创建笔记，校验标题唯一性
func (s *NoteService) Create(userID uint, req *dto.NoteRequest) (*models.Note, error) {
	req.Normalize()

	errs := FieldErrors{}
	if req.Title == nil || *req.Title == "" {
		errs["title"] = msgFieldRequired
	}
	if req.Content == nil || *req.Content == "" {
		errs["content"] = msgFieldRequired
	}

	if _, ok := errs["title"]; !ok {
		exists, err := s.noteRepo.ExistsByTitle(*req.Title, 0)
		if err != nil {
			return nil, fmt.Errorf("检查标题失败: %w", err)
		}
		if exists {
			errs["title"] = msgDuplicateNoteTitle
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	note := &models.Note{
		UserID:      &userID,
		Title:       *req.Title,
		Description: *req.Content,
	}
	if req.Color != nil {
		note.Color = *req.Color
	}

	if err := s.noteRepo.Create(note); err != nil {
		if isUniqueViolation(err) {
			return nil, FieldErrors{"title": msgDuplicateNoteTitle}
		}
		return nil, fmt.Errorf("创建笔记失败: %w", err)
	}

	return s.noteRepo.GetByIDAndUser(note.ID, userID)
}

// Update 部分更新笔记，未提供的字段保留原值
func (s *NoteService) Update(userID, noteID uint, req *dto.NoteRequest) (*models.Note, error) {
	note, err := s.noteRepo.GetByIDAndUser(noteID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询笔记失败: %w", err)
	}

	req.Normalize()

	errs := FieldErrors{}
	if req.Title != nil && *req.Title == "" {
		errs["title"] = msgFieldRequired
	}

	mergedTitle := note.Title
	if req.Title != nil && *req.Title != "" {
		mergedTitle = *req.Title
	}
	if _, ok := errs["title"]; !ok {
		exists, err := s.noteRepo.ExistsByTitle(mergedTitle, note.ID)
		if err != nil {
			return nil, fmt.Errorf("检查标题失败: %w", err)
		}
		if exists {
			errs["title"] = msgDuplicateNoteTitle
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	note.Title = mergedTitle
	if req.Content != nil {
		note.Description = *req.Content
	}
	if req.Color != nil {
		note.Color = *req.Color
	}

	if err := s.noteRepo.Save(note); err != nil {
		if isUniqueViolation(err) {
			return nil, FieldErrors{"title": msgDuplicateNoteTitle}
		}
		return nil, fmt.Errorf("更新笔记失败: %w", err)
	}

	return note, nil
}

// Get 获取用户自己的单条笔记
func (s *NoteService) Get(userID, noteID uint) (*models.Note, error) {
	note, err := s.noteRepo.GetByIDAndUser(noteID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询笔记失败: %w", err)
	}
	return note, nil
}

// List 获取用户的笔记列表
func (s *NoteService) List(userID uint) ([]models.Note, error) {
	return s.noteRepo.ListByUser(userID)
}

// Delete 硬删除用户自己的笔记
func (s *NoteService) Delete(userID, noteID uint) error {
	note, err := s.noteRepo.GetByIDAndUser(noteID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("查询笔记失败: %w", err)
	}
	return s.noteRepo.Delete(note.ID)
}
