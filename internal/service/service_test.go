package service

import (
	"testing"
	"time"

	"todo-go/internal/dto"
	"todo-go/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试使用独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}

	// 内存数据库限制单连接，避免连接池各自拿到空库
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}

	return db
}

// createUser 插入测试用户
func createUser(t *testing.T, db *gorm.DB, username string, superuser bool) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "x",
		IsSuperuser:  superuser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return user
}

func strPtr(s string) *string {
	return &s
}

func datePtr(d dto.Date) *dto.Date {
	return &d
}

// tomorrow 明天的日期
func tomorrow() dto.Date {
	return dto.NewDate(time.Now().AddDate(0, 0, 1))
}

// yesterday 昨天的日期
func yesterday() dto.Date {
	return dto.NewDate(time.Now().AddDate(0, 0, -1))
}
