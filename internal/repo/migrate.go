package repo

import (
	"gorm.io/gorm"

	"go-journal-api/internal/domain"
)

// Setup 声明 entry_tags 用自定义关联模型（复合主键，无独立 id），
// migrate 开关控制是否建表。mains 和测试共用。
func Setup(db *gorm.DB, migrate bool) error {
	if err := db.SetupJoinTable(&domain.Entry{}, "Tags", &domain.EntryTag{}); err != nil {
		return err
	}
	if migrate {
		return db.AutoMigrate(&domain.User{}, &domain.Tag{}, &domain.Entry{})
	}
	return nil
}
