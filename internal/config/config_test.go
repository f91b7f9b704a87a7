package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("DISCORD_SYNC_COMMANDS", "false")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("OPS_HTTP_PORT", "")
	t.Setenv("MEMBER_CACHE_TTL_SECONDS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ticket-bot", cfg.App.Name)
	assert.Equal(t, "token-123", cfg.Discord.Token)
	assert.False(t, cfg.Discord.SyncCommands)
	assert.Empty(t, cfg.Postgres.DSN)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "0.0.0.0:8080", cfg.Ops.Addr())
	assert.Equal(t, time.Minute, cfg.Ops.MemberCacheTTL())
}

func TestLoadSyncRequiresIdentifiers(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("DISCORD_SYNC_COMMANDS", "true")
	t.Setenv("DISCORD_APPLICATION_ID", "")
	t.Setenv("DISCORD_GUILD_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_APPLICATION_ID")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("DISCORD_SYNC_COMMANDS", "true")
	t.Setenv("DISCORD_APPLICATION_ID", "app-1")
	t.Setenv("DISCORD_GUILD_ID", "guild-1")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/tickets")
	t.Setenv("MEMBER_CACHE_TTL_SECONDS", "120")
	t.Setenv("OPS_HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "app-1", cfg.Discord.ApplicationID)
	assert.Equal(t, "guild-1", cfg.Discord.GuildID)
	assert.Equal(t, "postgres://localhost/tickets", cfg.Postgres.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Ops.MemberCacheTTL())
	assert.Equal(t, "0.0.0.0:9090", cfg.Ops.Addr())
}
