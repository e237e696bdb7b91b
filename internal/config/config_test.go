package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/klimatshop/internal/config"
)

func TestLoadConfig_defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "klimatshop", cfg.Mongo.Database)
	assert.Equal(t, 30*time.Minute, cfg.Telegram.SessionTTL)
	assert.Equal(t, "./data", cfg.Backup.Dir)
}

func TestLoadConfig_envOverride(t *testing.T) {
	t.Setenv("KLIMATSHOP_SERVER_ADDR", ":9000")
	t.Setenv("KLIMATSHOP_MONGO_DATABASE", "klimatshop_staging")
	t.Setenv("KLIMATSHOP_TELEGRAM_ADMIN_ID", "42")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "klimatshop_staging", cfg.Mongo.Database)
	assert.EqualValues(t, 42, cfg.Telegram.AdminID)
}
