package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"go-journal-api/internal/domain"
	"go-journal-api/internal/repo"
	"go-journal-api/pkg/utils"
)

// EntryService 条目核心逻辑：所有权校验、条目+标签联动写入、搜索过滤。
// 多步写入一律包事务，标签关联不会出现改一半的中间态。
type EntryService struct{ db *gorm.DB }

func NewEntryService(db *gorm.DB) *EntryService { return &EntryService{db: db} }

// List 只返回 callerID 自己的条目，created_at 倒序，不分页。
// query / tag 过滤同时给出时取交集。
func (s *EntryService) List(ctx context.Context, callerID, query, tag string) ([]domain.Entry, error) {
	return repo.NewEntryRepo(s.db.WithContext(ctx)).Search(callerID, query, tag)
}

// Get 条目不存在和不属于 caller 返回同一个错误，不区分两种情况
func (s *EntryService) Get(ctx context.Context, callerID, id string) (*domain.Entry, error) {
	e, err := repo.NewEntryRepo(s.db.WithContext(ctx)).FindByIDWithTags(id)
	if err != nil {
		return nil, err
	}
	if e == nil || e.AuthorID != callerID {
		return nil, domain.ErrNotFoundOrForbidden
	}
	return e, nil
}

func (s *EntryService) Create(ctx context.Context, callerID, title, content string, tagNames []string) (*domain.Entry, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrValidation
	}

	id := utils.NewID()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e := &domain.Entry{ID: id, Title: title, Content: content, AuthorID: callerID}
		if err := repo.NewEntryRepo(tx).Create(e); err != nil {
			return err
		}
		return linkTags(tx, id, tagNames)
	})
	if err != nil {
		return nil, err
	}
	return repo.NewEntryRepo(s.db.WithContext(ctx)).FindByIDWithTags(id)
}

// Update 覆盖标题和正文；tagNames 三态：
//
//	nil   → 不动标签关联
//	空切片 → 清空全部关联
//	有内容 → 整组替换（先删后建，旧关联一律不保留）
//
// 判 nil 而不是判长度，字段缺省不会误清标签。
func (s *EntryService) Update(ctx context.Context, callerID, id, title, content string, tagNames *[]string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entries := repo.NewEntryRepo(tx)
		e, err := entries.FindByID(id)
		if err != nil {
			return err
		}
		if e == nil || e.AuthorID != callerID {
			return domain.ErrNotFoundOrForbidden
		}

		if err := tx.Model(&domain.Entry{}).Where("id = ?", id).
			Updates(map[string]any{"title": title, "content": content}).Error; err != nil {
			return err
		}

		if tagNames == nil {
			return nil
		}
		return linkTags(tx, id, *tagNames)
	})
}

func (s *EntryService) Delete(ctx context.Context, callerID, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entries := repo.NewEntryRepo(tx)
		e, err := entries.FindByID(id)
		if err != nil {
			return err
		}
		if e == nil || e.AuthorID != callerID {
			return domain.ErrNotFoundOrForbidden
		}
		return entries.DeleteWithLinks(id)
	})
}

// linkTags 名字按注册表语义 upsert（已存在即复用，不重复建行），
// 再整组替换条目的关联。caller 传了重复名只算一次，
// entry_tags 是复合主键，重复插入会直接炸事务。
func linkTags(tx *gorm.DB, entryID string, names []string) error {
	tags := repo.NewTagRepo(tx)
	seen := make(map[string]struct{}, len(names))
	ids := make([]string, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		t, err := tags.GetOrCreate(name)
		if err != nil {
			return err
		}
		ids = append(ids, t.ID)
	}
	return repo.NewEntryRepo(tx).ReplaceTagLinks(entryID, ids)
}
