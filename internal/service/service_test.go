package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-journal-api/internal/domain"
	"go-journal-api/internal/repo"
	"go-journal-api/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// 内存库每个连接各自独立，收紧到单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repo.Setup(db, true))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		PasswordHash: utils.HashPassword("pass12345"),
		Role:         "user",
	}
	require.NoError(t, repo.NewUserRepo(db).Create(u))
	return u
}

func setCreatedAt(t *testing.T, db *gorm.DB, entryID string, at time.Time) {
	t.Helper()
	require.NoError(t, db.Model(&domain.Entry{}).Where("id = ?", entryID).
		Update("created_at", at).Error)
}

func tagCount(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.Tag{}).Where("name = ?", name).Count(&n).Error)
	return n
}

func linkCount(t *testing.T, db *gorm.DB, entryID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.EntryTag{}).Where("entry_id = ?", entryID).Count(&n).Error)
	return n
}
