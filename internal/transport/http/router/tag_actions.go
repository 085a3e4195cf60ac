package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-journal-api/internal/core/cache"
	"go-journal-api/internal/repo"
	httpez "go-journal-api/internal/transport/http/ez"
)

// tagModule 标签词表，走模块注册器挂载（见 registry.go）。
// 标签全局共享、只增不删，适合短 TTL 缓存；redis 未配置时直接回源。
type tagModule struct {
	db    *gorm.DB
	cache *cache.Cache
}

func (m *tagModule) MountAPI(g *gin.RouterGroup) {
	ez := httpez.New(g)

	type tagsOut struct {
		Tags []string `json:"tags"`
	}
	httpez.RegisterAction[struct{}, tagsOut](ez, m.db, httpez.Action[struct{}, tagsOut]{
		Method: http.MethodGet,
		Path:   "/tags",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (tagsOut, error) {
			names, err := m.loadNames(c.Request.Context(), tx)
			if err != nil {
				return tagsOut{}, err
			}
			return tagsOut{Tags: names}, nil
		},
	})
}

func (m *tagModule) loadNames(ctx context.Context, tx *gorm.DB) ([]string, error) {
	load := func(ctx context.Context) (*[]string, error) {
		tags, err := repo.NewTagRepo(tx).List()
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(tags))
		for _, t := range tags {
			names = append(names, t.Name)
		}
		return &names, nil
	}

	if m.cache == nil {
		names, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return *names, nil
	}
	names, err := cache.GetOrLoadJSON[[]string](m.cache, ctx, "tags:all", 30*time.Second, load)
	if err != nil || names == nil {
		return nil, err
	}
	return *names, nil
}

var _ APIModule = (*tagModule)(nil)
