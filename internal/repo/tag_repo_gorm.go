package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-journal-api/internal/domain"
	"go-journal-api/pkg/utils"
)

type TagRepo struct{ db *gorm.DB }

var _ domain.TagRepository = (*TagRepo)(nil)

func NewTagRepo(db *gorm.DB) *TagRepo { return &TagRepo{db: db} }

// GetOrCreate 按名字精确查找，不存在则创建。
// 两个请求同时创建同名标签时，后到的 Create 会撞唯一索引，此时回查一次即可，
// 不会产生重名的第二行。
func (r *TagRepo) GetOrCreate(name string) (*domain.Tag, error) {
	var t domain.Tag
	err := r.db.First(&t, "name = ?", name).Error
	if err == nil {
		return &t, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	t = domain.Tag{ID: utils.NewID(), Name: name}
	if e := r.db.Create(&t).Error; e != nil {
		if IsDupKey(e) {
			// 并发兜底：唯一冲突 → 再查一次
			if e2 := r.db.First(&t, "name = ?", name).Error; e2 != nil {
				return nil, e2
			}
			return &t, nil
		}
		return nil, e
	}
	return &t, nil
}

func (r *TagRepo) List() ([]domain.Tag, error) {
	var tags []domain.Tag
	err := r.db.Order("name asc").Find(&tags).Error
	return tags, err
}

// IsDupKey 不依赖 gorm.ErrDuplicatedKey，避免驱动/版本差异导致误判
func IsDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique failed") ||
		strings.Contains(msg, "duplicate key")
}
