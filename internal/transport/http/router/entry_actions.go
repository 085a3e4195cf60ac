package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-journal-api/internal/domain"
	"go-journal-api/internal/service"
	httpez "go-journal-api/internal/transport/http/ez"
)

// 条目 CRUD，全部要求登录；所有权校验在 service 层
func mountEntryActions(authed *gin.RouterGroup, db *gorm.DB, svc *service.EntryService) {
	ez := httpez.New(authed)

	// GET /entries?q=&tag=
	type listQ struct {
		Q   string `form:"q"`
		Tag string `form:"tag"`
	}
	httpez.RegisterAction[listQ, []domain.Entry](ez, db, httpez.Action[listQ, []domain.Entry]{
		Method: http.MethodGet,
		Path:   "/entries",
		Binder: httpez.BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *listQ) ([]domain.Entry, error) {
			return svc.List(c.Request.Context(), c.GetString("userId"), in.Q, in.Tag)
		},
	})

	// POST /entries
	type createIn struct {
		Title   string   `json:"title"   binding:"required"`
		Content string   `json:"content"`
		Tags    []string `json:"tags"`
	}
	httpez.RegisterAction[createIn, *domain.Entry](ez, db, httpez.Action[createIn, *domain.Entry]{
		Method: http.MethodPost,
		Path:   "/entries",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *createIn) (*domain.Entry, error) {
			return svc.Create(c.Request.Context(), c.GetString("userId"), in.Title, in.Content, in.Tags)
		},
	})

	// GET /entries/:id
	httpez.RegisterAction[struct{}, *domain.Entry](ez, db, httpez.Action[struct{}, *domain.Entry]{
		Method: http.MethodGet,
		Path:   "/entries/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.Entry, error) {
			return svc.Get(c.Request.Context(), c.GetString("userId"), c.Param("id"))
		},
	})

	// PATCH /entries/:id
	// tags 三态：字段缺省(nil) = 不动关联；[] = 清空；有值 = 整组替换
	type updateIn struct {
		Title   string    `json:"title"   binding:"required"`
		Content string    `json:"content"`
		Tags    *[]string `json:"tags"`
	}
	type successOut struct {
		Success bool `json:"success"`
	}
	httpez.RegisterAction[updateIn, successOut](ez, db, httpez.Action[updateIn, successOut]{
		Method: http.MethodPatch,
		Path:   "/entries/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *updateIn) (successOut, error) {
			err := svc.Update(c.Request.Context(), c.GetString("userId"), c.Param("id"), in.Title, in.Content, in.Tags)
			if err != nil {
				return successOut{}, err
			}
			return successOut{Success: true}, nil
		},
	})

	// DELETE /entries/:id
	httpez.RegisterAction[struct{}, successOut](ez, db, httpez.Action[struct{}, successOut]{
		Method: http.MethodDelete,
		Path:   "/entries/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (successOut, error) {
			if err := svc.Delete(c.Request.Context(), c.GetString("userId"), c.Param("id")); err != nil {
				return successOut{}, err
			}
			return successOut{Success: true}, nil
		},
	})
}
