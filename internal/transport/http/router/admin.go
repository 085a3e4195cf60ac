package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-journal-api/internal/core/auth"
	"go-journal-api/internal/core/server"
	mdw "go-journal-api/internal/transport/http/middleware"
)

// NewAdminEngine 管理端引擎：独立监听，统一要求 admin 角色
func NewAdminEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer) *gin.Engine {
	r := server.NewBaseEngine(l)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, "admin"))

	MountAllAdmin(admin)
	mountAdminActions(admin, db)

	return r
}
