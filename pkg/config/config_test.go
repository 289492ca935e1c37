package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.ini")
	require.NoError(t, os.WriteFile(path, []byte(`[System]
Port = 9000
SiteName = Test Site

[Database]
Type = mysql
Host = db.internal
`), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.GetInt(KeyServerPort))
	assert.Equal(t, "Test Site", cfg.GetString(KeySiteName))
	assert.Equal(t, "mysql", cfg.GetString(KeyDBType))
	assert.Equal(t, "db.internal", cfg.GetString(KeyDBHost))
	// 未出现在文件中的键使用默认值
	assert.Equal(t, "local", cfg.GetString(KeyStorageType))
	assert.Equal(t, 5, cfg.GetInt(KeyContactRateBurst))
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.ini")
	require.NoError(t, os.WriteFile(path, []byte("[System]\nPort = 9000\n"), 0644))
	t.Setenv("FINTAA_SYSTEM_PORT", "9100")
	t.Setenv("FINTAA_CONTACT_RATELIMITPERMINUTE", "3")

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.GetString(KeyServerPort))
	assert.Equal(t, 3, cfg.GetInt(KeyContactRateLimit))
}

func TestMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)
	assert.Equal(t, "8091", cfg.GetString(KeyServerPort))
	assert.Equal(t, "sqlite", cfg.GetString(KeyDBType))

	cfg.Set(KeyServerDebug, true)
	assert.True(t, cfg.GetBool(KeyServerDebug))
}

func TestDefaultConfigFileIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "conf.ini")
	require.NoError(t, createDefaultConfigFile(path))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "8091", cfg.GetString(KeyServerPort))
	assert.Equal(t, "sqlite", cfg.GetString(KeyDBType))
	assert.Len(t, cfg.GetString(KeyIDSeed), 32, "默认配置带随机的公共ID种子")
}
