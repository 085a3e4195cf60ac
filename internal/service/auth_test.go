package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-journal-api/internal/core/auth"
	"go-journal-api/internal/domain"
	"go-journal-api/pkg/utils"
)

func newJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newJWTer())
	ctx := context.Background()

	u, err := svc.Register(ctx, "new@example.com", "s3cret!!")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", u.Email)
	assert.Equal(t, "user", u.Role)

	// 存的是单向哈希，不是明文
	assert.NotEqual(t, "s3cret!!", u.PasswordHash)
	assert.True(t, utils.CheckPassword("s3cret!!", u.PasswordHash))
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newJWTer())
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "pw")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.Register(ctx, "x@example.com", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newJWTer())
	ctx := context.Background()

	first, err := svc.Register(ctx, "dup@example.com", "original")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "dup@example.com", "other")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	// 已有记录原样保留
	var u domain.User
	require.NoError(t, db.First(&u, "email = ?", "dup@example.com").Error)
	assert.Equal(t, first.ID, u.ID)
	assert.True(t, utils.CheckPassword("original", u.PasswordHash))
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	jwter := newJWTer()
	svc := NewAuthService(db, jwter)
	ctx := context.Background()

	u, err := svc.Register(ctx, "login@example.com", "right-pw")
	require.NoError(t, err)

	tok, got, err := svc.Login(ctx, "login@example.com", "right-pw")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	claims, err := jwter.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UID)
	assert.Equal(t, "user", claims.Role)

	_, _, err = svc.Login(ctx, "login@example.com", "wrong-pw")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newJWTer())
	ctx := context.Background()

	u, err := svc.Register(ctx, "me@example.com", "pw123456")
	require.NoError(t, err)

	got, err := svc.Me(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", got.Email)

	_, err = svc.Me(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFoundOrForbidden)
}
