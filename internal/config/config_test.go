package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, CatalogBackendRedis, cfg.Catalog.Backend)
	assert.False(t, cfg.Kit.MustGetAll)
	assert.Equal(t, 36, cfg.Kit.InventorySize)
	assert.Equal(t, "kits", cfg.MQTT.TopicPrefix)
	assert.Equal(t, 10*time.Second, cfg.MQTT.ConnectTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("KITS_KIT_MUST_GET_ALL", "true")
	t.Setenv("KITS_KIT_PROCESS_TOKENS", "true")
	t.Setenv("KITS_CATALOG_BACKEND", "file")
	t.Setenv("KITS_CATALOG_PATH", "/tmp/kits.hujson")
	t.Setenv("KITS_KIT_INVENTORY_SIZE", "27")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.Kit.MustGetAll)
	assert.True(t, cfg.Kit.ProcessTokens)
	assert.Equal(t, CatalogBackendFile, cfg.Catalog.Backend)
	assert.Equal(t, "/tmp/kits.hujson", cfg.Catalog.Path)
	assert.Equal(t, 27, cfg.Kit.InventorySize)
}

func TestFromEnvRejectsUnknownBackend(t *testing.T) {
	t.Setenv("KITS_CATALOG_BACKEND", "postgres")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "unknown catalog backend")
}

func TestFromEnvRejectsBadInventorySize(t *testing.T) {
	t.Setenv("KITS_KIT_INVENTORY_SIZE", "0")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "inventory size")
}
