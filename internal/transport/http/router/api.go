package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-journal-api/internal/core/auth"
	"go-journal-api/internal/core/cache"
	"go-journal-api/internal/service"
	mdw "go-journal-api/internal/transport/http/middleware"
)

// NewAPIEngine 用户端引擎：注册/登录公开，其余全部走 JWT 鉴权。
// rdb 可为 nil（未配置 redis 时标签列表直接回源）。
func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, rdb *cache.Cache) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	api := r.Group("/api/v1")

	// 鉴权分组（/entries /tags /me 都挂这里才拿得到 userId）
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))

	authSvc := service.NewAuthService(db, jwter)
	entrySvc := service.NewEntryService(db)

	mountAuthActions(api, authed, db, authSvc)
	mountEntryActions(authed, db, entrySvc)

	(&tagModule{db: db, cache: rdb}).MountAPI(authed)

	// 外部自注册模块统一在鉴权分组下挂载
	MountAllAPI(authed)

	return r
}
