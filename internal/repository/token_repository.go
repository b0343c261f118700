package repository

import (
	"todo-go/internal/models"

	"gorm.io/gorm"
)

// TokenRepository 认证凭证数据访问层
type TokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository 创建凭证Repository
func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// GetByUserID 获取用户当前凭证
func (r *TokenRepository) GetByUserID(userID uint) (*models.AuthToken, error) {
	var token models.AuthToken
	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Upsert 写入用户凭证，已存在则覆盖
func (r *TokenRepository) Upsert(userID uint, token string) (*models.AuthToken, error) {
	existing, err := r.GetByUserID(userID)
	if err == nil {
		existing.Token = token
		if err := r.db.Save(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}

	record := &models.AuthToken{UserID: userID, Token: token}
	if err := r.db.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}
