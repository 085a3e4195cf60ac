package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-journal-api/internal/domain"
)

type EntryRepo struct{ db *gorm.DB }

var _ domain.EntryRepository = (*EntryRepo)(nil)

func NewEntryRepo(db *gorm.DB) *EntryRepo { return &EntryRepo{db: db} }

func (r *EntryRepo) Create(e *domain.Entry) error { return r.db.Create(e).Error }

func (r *EntryRepo) FindByID(id string) (*domain.Entry, error) {
	var e domain.Entry
	err := r.db.First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &e, err
}

func (r *EntryRepo) FindByIDWithTags(id string) (*domain.Entry, error) {
	var e domain.Entry
	err := r.db.Preload("Tags").Preload("Author").First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &e, err
}

// Search 按作者过滤，query 对标题/正文做大小写不敏感子串匹配，
// tagName 要求关联标签名精确相等（区分大小写）；两者同时给出时取交集。
// LOWER(...) LIKE 在 postgres / mysql / sqlite 下行为一致。
func (r *EntryRepo) Search(authorID, query, tagName string) ([]domain.Entry, error) {
	// join 之后两张表都有 id/created_at，必须只取 entries 的列
	q := r.db.Model(&domain.Entry{}).Select("entries.*").Where("entries.author_id = ?", authorID)

	if s := strings.TrimSpace(query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(entries.title) LIKE ? OR LOWER(entries.content) LIKE ?", like, like)
	}
	if tagName != "" {
		q = q.Joins("JOIN entry_tags ON entry_tags.entry_id = entries.id").
			Joins("JOIN tags ON tags.id = entry_tags.tag_id").
			Where("tags.name = ?", tagName)
	}

	// 空结果要序列化成 []，不能是 null
	entries := make([]domain.Entry, 0)
	err := q.Preload("Tags").Preload("Author").
		Order("entries.created_at DESC").
		Find(&entries).Error
	return entries, err
}

// ReplaceTagLinks 整组替换条目的标签关联：先删后插，调用方负责包事务
func (r *EntryRepo) ReplaceTagLinks(entryID string, tagIDs []string) error {
	if err := r.db.Where("entry_id = ?", entryID).Delete(&domain.EntryTag{}).Error; err != nil {
		return err
	}
	for _, tid := range tagIDs {
		if err := r.db.Create(&domain.EntryTag{EntryID: entryID, TagID: tid}).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteWithLinks 删除条目及其全部标签关联（标签本身保留）
func (r *EntryRepo) DeleteWithLinks(entryID string) error {
	if err := r.db.Where("entry_id = ?", entryID).Delete(&domain.EntryTag{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&domain.Entry{}, "id = ?", entryID).Error
}
