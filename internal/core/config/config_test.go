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
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  name: spring-crud
  env: test
  http:
    host: 127.0.0.1
    port: 9090
log:
  level: debug
  json: true
db:
  driver: sqlite
  dsn: ":memory:"
  automigrate: true
jwt:
  secret: test-secret
  issuer: spring-crud
  accesstokenttlmin: 15
auth:
  seedusername: admin
  seedpassword: admin123
entity:
  types: [USER, DEVICE]
`), 0o600))

	c := Load(path)

	assert.Equal(t, "spring-crud", c.App.Name)
	assert.Equal(t, 9090, c.App.HTTP.Port)
	assert.True(t, c.Log.JSON)
	assert.Equal(t, "sqlite", c.DB.Driver)
	assert.True(t, c.DB.AutoMigrate)
	assert.Equal(t, 15, c.JWT.AccessTokenTTLMin)
	assert.Equal(t, []string{"USER", "DEVICE"}, c.Entity.Types)

	// 未显式配置的项吃默认值
	assert.Equal(t, "admin", c.Auth.SeedRole)
	assert.Equal(t, 30, c.Auth.SessionTTLMin)
}
