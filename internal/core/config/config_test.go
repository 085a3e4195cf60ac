package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
app:
  name: journal-api
  env: test
  http:
    host: 127.0.0.1
    port: 9090
  admin:
    host: 127.0.0.1
    port: 9091
log:
  level: debug
  json: true
jwt:
  secret: abc
  issuer: journal-api
  accesstokenttlmin: 60
db:
  driver: sqlite
  dsn: ":memory:"
  automigrate: true
redis:
  addr: ""
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	c := Load(path)
	assert.Equal(t, "journal-api", c.App.Name)
	assert.Equal(t, 9090, c.App.HTTP.Port)
	assert.Equal(t, 9091, c.App.Admin.Port)
	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Log.JSON)
	assert.Equal(t, "sqlite", c.DB.Driver)
	assert.True(t, c.DB.AutoMigrate)
	assert.Equal(t, 60, c.JWT.AccessTokenTTLMin)
	assert.Empty(t, c.Redis.Addr)
}
