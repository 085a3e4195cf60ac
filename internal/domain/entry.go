package domain

import "time"

// Entry 日记条目，归属唯一作者；content 为 markdown 原文，服务端不渲染
type Entry struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Content  string `gorm:"type:text" json:"content"`
	AuthorID string `gorm:"size:36;index;not null" json:"authorId"` // 创建后不可变
	Author   *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Tags []Tag `gorm:"many2many:entry_tags" json:"tags"`
}

func (Entry) TableName() string { return "entries" }

// TagNames 关联标签名（保持 preload 顺序）
func (e *Entry) TagNames() []string {
	names := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		names = append(names, t.Name)
	}
	return names
}

// Tag 全局标签：name 全局唯一（区分大小写），所有用户共享，只增不删
type Tag struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:191;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Tag) TableName() string { return "tags" }

// EntryTag 条目-标签关联，复合主键，无独立 id；更新时整组替换
type EntryTag struct {
	EntryID string `gorm:"primaryKey;size:36"`
	TagID   string `gorm:"primaryKey;size:36"`
}

func (EntryTag) TableName() string { return "entry_tags" }

type EntryRepository interface {
	Create(e *Entry) error
	FindByID(id string) (*Entry, error)
	FindByIDWithTags(id string) (*Entry, error)
	Search(authorID, query, tagName string) ([]Entry, error)
	ReplaceTagLinks(entryID string, tagIDs []string) error
	DeleteWithLinks(entryID string) error
}

type TagRepository interface {
	GetOrCreate(name string) (*Tag, error)
	List() ([]Tag, error)
}
