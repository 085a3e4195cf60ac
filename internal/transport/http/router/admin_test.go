package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-journal-api/internal/core/auth"
	"go-journal-api/internal/domain"
	"go-journal-api/internal/repo"
	"go-journal-api/internal/service"
	"go-journal-api/pkg/utils"
)

type adminFixture struct {
	engine   *gin.Engine
	db       *gorm.DB
	adminTok string
	userTok  string
	userID   string
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repo.Setup(db, true))

	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}

	admin := &domain.User{ID: utils.NewID(), Email: "admin@example.com", PasswordHash: utils.HashPassword("pw"), Role: "admin"}
	require.NoError(t, db.Create(admin).Error)
	user := &domain.User{ID: utils.NewID(), Email: "user@example.com", PasswordHash: utils.HashPassword("pw"), Role: "user"}
	require.NoError(t, db.Create(user).Error)

	adminTok, err := jwter.Issue(admin.ID, "admin")
	require.NoError(t, err)
	userTok, err := jwter.Issue(user.ID, "user")
	require.NoError(t, err)

	return &adminFixture{
		engine:   NewAdminEngine(zap.NewNop(), db, jwter),
		db:       db,
		adminTok: adminTok,
		userTok:  userTok,
		userID:   user.ID,
	}
}

func (f *adminFixture) get(t *testing.T, path, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestAdminRequiresAdminRole(t *testing.T) {
	f := newAdminFixture(t)

	w, _ := f.get(t, "/admin/v1/users", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 普通用户的 token 进不来
	w, _ = f.get(t, "/admin/v1/users", f.userTok)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOverview(t *testing.T) {
	f := newAdminFixture(t)

	svc := service.NewEntryService(f.db)
	_, err := svc.Create(t.Context(), f.userID, "hello", "world", []string{"alpha"})
	require.NoError(t, err)

	w, env := f.get(t, "/admin/v1/users?q=user@", f.adminTok)
	require.Equal(t, http.StatusOK, w.Code)
	var users struct {
		Total int64 `json:"total"`
		Items []struct {
			Email   string `json:"email"`
			Entries int64  `json:"entries"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users.Items, 1)
	assert.EqualValues(t, 1, users.Items[0].Entries)

	w, env = f.get(t, "/admin/v1/entries?author_id="+f.userID, f.adminTok)
	require.Equal(t, http.StatusOK, w.Code)
	var entries struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	assert.EqualValues(t, 1, entries.Total)

	w, env = f.get(t, "/admin/v1/tags", f.adminTok)
	require.Equal(t, http.StatusOK, w.Code)
	var tags []struct {
		Name    string `json:"name"`
		Entries int64  `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tags))
	require.Len(t, tags, 1)
	assert.Equal(t, "alpha", tags[0].Name)
	assert.EqualValues(t, 1, tags[0].Entries)
}

func TestAdminBanUser(t *testing.T) {
	f := newAdminFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/v1/users/"+f.userID+"/ban", nil)
	req.Header.Set("Authorization", "Bearer "+f.adminTok)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// 软删后默认查询不可见
	var n int64
	require.NoError(t, f.db.Model(&domain.User{}).Where("id = ?", f.userID).Count(&n).Error)
	assert.EqualValues(t, 0, n)

	// 再封一次 → 404
	w = httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
