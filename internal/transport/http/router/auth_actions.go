package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-journal-api/internal/domain"
	"go-journal-api/internal/service"
	httpez "go-journal-api/internal/transport/http/ez"
)

// 注册 / 登录 / 当前用户
func mountAuthActions(api, authed *gin.RouterGroup, db *gorm.DB, svc *service.AuthService) {
	ezPublic := httpez.New(api)

	// POST /register：邮箱占用按 400 返回，响应里永远没有密码哈希
	type registerIn struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	type registerOut struct {
		User *domain.User `json:"user"`
	}
	httpez.RegisterAction[registerIn, registerOut](ezPublic, db, httpez.Action[registerIn, registerOut]{
		Method: http.MethodPost,
		Path:   "/register",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *registerIn) (registerOut, error) {
			u, err := svc.Register(c.Request.Context(), in.Email, in.Password)
			if err != nil {
				return registerOut{}, err
			}
			return registerOut{User: u}, nil
		},
	})

	// POST /auth/login
	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	type loginOut struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	httpez.RegisterAction[loginIn, loginOut](ezPublic, db, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *loginIn) (loginOut, error) {
			tok, u, err := svc.Login(c.Request.Context(), in.Email, in.Password)
			if err != nil {
				return loginOut{}, err
			}
			return loginOut{Token: tok, User: u}, nil
		},
	})

	// GET /me
	ezAuth := httpez.New(authed)
	httpez.RegisterAction[struct{}, *domain.User](ezAuth, db, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.User, error) {
			return svc.Me(c.Request.Context(), c.GetString("userId"))
		},
	})
}
