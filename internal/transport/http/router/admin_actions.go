package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-journal-api/internal/domain"
	httpez "go-journal-api/internal/transport/http/ez"
)

// 管理端接口集中在这里注册：用户/条目/标签总览 + 封禁
func mountAdminActions(admin *gin.RouterGroup, db *gorm.DB) {
	ez := httpez.New(admin)

	// --- GET /admin/v1/users  用户列表 ---
	type userListQ struct {
		Offset int    `form:"offset,default=0"`
		Limit  int    `form:"limit,default=20"`
		Q      string `form:"q"` // 按 email 模糊搜
	}
	type userRow struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		Entries   int64     `json:"entries"`
		CreatedAt time.Time `json:"createdAt"`
	}
	type userListOut struct {
		Total int64     `json:"total"`
		Items []userRow `json:"items"`
	}
	httpez.RegisterAction[userListQ, userListOut](ez, db, httpez.Action[userListQ, userListOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindQuery,
		Auth:   true,
		Roles:  []string{"admin"},
		Handler: func(c *gin.Context, tx *gorm.DB, in *userListQ) (userListOut, error) {
			if in.Limit <= 0 || in.Limit > 100 {
				in.Limit = 20
			}
			q := tx.Model(&domain.User{})
			if s := strings.TrimSpace(in.Q); s != "" {
				q = q.Where("email LIKE ?", "%"+s+"%")
			}

			var total int64
			if err := q.Count(&total).Error; err != nil {
				return userListOut{}, httpez.Internal("count users failed", err)
			}
			var us []domain.User
			if err := q.Order("created_at DESC").Limit(in.Limit).Offset(in.Offset).Find(&us).Error; err != nil {
				return userListOut{}, httpez.Internal("list users failed", err)
			}

			out := userListOut{Total: total, Items: make([]userRow, 0, len(us))}
			for _, u := range us {
				var n int64
				if err := tx.Model(&domain.Entry{}).Where("author_id = ?", u.ID).Count(&n).Error; err != nil {
					return userListOut{}, httpez.Internal("count entries failed", err)
				}
				out.Items = append(out.Items, userRow{
					ID: u.ID, Email: u.Email, Role: u.Role, Entries: n, CreatedAt: u.CreatedAt,
				})
			}
			return out, nil
		},
	})

	// --- GET /admin/v1/entries  条目总览（可按作者/关键词过滤）---
	type entryListQ struct {
		Offset   int    `form:"offset,default=0"`
		Limit    int    `form:"limit,default=20"`
		AuthorID string `form:"author_id"`
		Q        string `form:"q"`
	}
	type entryListOut struct {
		Total int64          `json:"total"`
		Items []domain.Entry `json:"items"`
	}
	httpez.RegisterAction[entryListQ, entryListOut](ez, db, httpez.Action[entryListQ, entryListOut]{
		Method: http.MethodGet,
		Path:   "/entries",
		Binder: httpez.BindQuery,
		Auth:   true,
		Roles:  []string{"admin"},
		Handler: func(c *gin.Context, tx *gorm.DB, in *entryListQ) (entryListOut, error) {
			if in.Limit <= 0 || in.Limit > 100 {
				in.Limit = 20
			}
			q := tx.Model(&domain.Entry{})
			if in.AuthorID != "" {
				q = q.Where("author_id = ?", in.AuthorID)
			}
			if s := strings.TrimSpace(in.Q); s != "" {
				like := "%" + strings.ToLower(s) + "%"
				q = q.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", like, like)
			}

			var total int64
			if err := q.Count(&total).Error; err != nil {
				return entryListOut{}, httpez.Internal("count entries failed", err)
			}
			var es []domain.Entry
			if err := q.Preload("Tags").Order("created_at DESC").
				Limit(in.Limit).Offset(in.Offset).Find(&es).Error; err != nil {
				return entryListOut{}, httpez.Internal("list entries failed", err)
			}
			return entryListOut{Total: total, Items: es}, nil
		},
	})

	// --- GET /admin/v1/tags  标签及引用数（孤儿标签也会列出来）---
	type tagRow struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Entries int64  `json:"entries"`
	}
	httpez.RegisterAction[struct{}, []tagRow](ez, db, httpez.Action[struct{}, []tagRow]{
		Method: http.MethodGet,
		Path:   "/tags",
		Binder: httpez.BindNone,
		Auth:   true,
		Roles:  []string{"admin"},
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) ([]tagRow, error) {
			var rows []tagRow
			err := tx.Model(&domain.Tag{}).
				Select("tags.id, tags.name, COUNT(entry_tags.entry_id) AS entries").
				Joins("LEFT JOIN entry_tags ON entry_tags.tag_id = tags.id").
				Group("tags.id, tags.name").
				Order("tags.name ASC").
				Scan(&rows).Error
			if err != nil {
				return nil, httpez.Internal("list tags failed", err)
			}
			return rows, nil
		},
	})

	// --- POST /admin/v1/users/:id/ban  封禁（软删用户，条目保留）---
	httpez.RegisterAction[struct{}, gin.H](ez, db, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/users/:id/ban",
		Binder: httpez.BindNone,
		Auth:   true,
		Roles:  []string{"admin"},
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if id == "" {
				return nil, httpez.BadRequest("missing id")
			}
			res := tx.Where("id = ?", id).Delete(&domain.User{})
			if res.Error != nil {
				return nil, httpez.Internal("ban user failed", res.Error)
			}
			if res.RowsAffected == 0 {
				return nil, httpez.NotFound("user not found")
			}
			return gin.H{"id": id}, nil
		},
	})
}
