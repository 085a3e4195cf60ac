package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"go-journal-api/internal/core/auth"
	"go-journal-api/internal/domain"
	"go-journal-api/internal/repo"
	"go-journal-api/pkg/utils"
)

type AuthService struct {
	db    *gorm.DB
	jwter *auth.JWTer
}

func NewAuthService(db *gorm.DB, jwter *auth.JWTer) *AuthService {
	return &AuthService{db: db, jwter: jwter}
}

// Register 邮箱已占用返回 ErrEmailTaken，已有记录不做任何改动。
// 明文和哈希都不入日志、不进响应。
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrValidation
	}

	users := repo.NewUserRepo(s.db.WithContext(ctx))
	existing, err := users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		Role:         "user",
	}
	if err := users.Create(u); err != nil {
		// 并发重复注册：撞唯一索引按已占用处理
		if repo.IsDupKey(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	u, err := repo.NewUserRepo(s.db.WithContext(ctx)).FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return "", nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}
	tok, err := s.jwter.Issue(u.ID, u.Role)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

func (s *AuthService) Me(ctx context.Context, uid string) (*domain.User, error) {
	u, err := repo.NewUserRepo(s.db.WithContext(ctx)).FindByID(uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFoundOrForbidden
	}
	return u, nil
}
