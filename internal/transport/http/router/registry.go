package router

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// 模块可实现其中一个或两个接口，挂到用户端 / 管理端分组
type APIModule interface{ MountAPI(*gin.RouterGroup) }
type AdminModule interface{ MountAdmin(*gin.RouterGroup) }

var (
	mu        sync.RWMutex
	apiMods   []APIModule
	adminMods []AdminModule
)

// Register 统一注册入口：按类型断言分发到 API/Admin 列表
func Register(mod any) {
	mu.Lock()
	defer mu.Unlock()
	if m, ok := mod.(APIModule); ok {
		apiMods = append(apiMods, m)
	}
	if m, ok := mod.(AdminModule); ok {
		adminMods = append(adminMods, m)
	}
}

// MountAllAPI 按注册顺序挂载所有 API 模块
func MountAllAPI(api *gin.RouterGroup) {
	mu.RLock()
	mods := append([]APIModule(nil), apiMods...)
	mu.RUnlock()
	for _, m := range mods {
		m.MountAPI(api)
	}
}

// MountAllAdmin 按注册顺序挂载所有 Admin 模块
func MountAllAdmin(admin *gin.RouterGroup) {
	mu.RLock()
	mods := append([]AdminModule(nil), adminMods...)
	mu.RUnlock()
	for _, m := range mods {
		m.MountAdmin(admin)
	}
}
