package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the bot.
type Config struct {
	App          AppConfig
	Discord      DiscordConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Ops          OpsConfig
	Notification NotificationConfig
}

// AppConfig controls process level behavior.
type AppConfig struct {
	Name    string
	Env     string
	Version string
}

// DiscordConfig holds gateway credentials and the target guild.
type DiscordConfig struct {
	Token         string
	ApplicationID string
	GuildID       string
	SyncCommands  bool
}

// PostgresConfig holds DB connection values. An empty DSN selects the
// in-memory ticket store.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// OpsConfig configures the sidecar ops HTTP server.
type OpsConfig struct {
	Enabled           bool
	Host              string
	Port              string
	JWTSecret         string
	MemberCacheTTLSec int
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "ticket-bot"),
			Env:     getEnv("APP_ENV", "development"),
			Version: getEnv("APP_VERSION", "dev"),
		},
		Discord: DiscordConfig{
			Token:         os.Getenv("DISCORD_TOKEN"),
			ApplicationID: os.Getenv("DISCORD_APPLICATION_ID"),
			GuildID:       os.Getenv("DISCORD_GUILD_ID"),
			SyncCommands:  getEnvAsBool("DISCORD_SYNC_COMMANDS", true),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Ops: OpsConfig{
			Enabled:           getEnvAsBool("OPS_HTTP_ENABLED", true),
			Host:              getEnv("OPS_HTTP_HOST", "0.0.0.0"),
			Port:              getEnv("OPS_HTTP_PORT", "8080"),
			JWTSecret:         getEnv("OPS_JWT_SECRET", "dev-secret"),
			MemberCacheTTLSec: getEnvAsInt("MEMBER_CACHE_TTL_SECONDS", 60),
		},
		Notification: NotificationConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	if cfg.Discord.Token == "" {
		return nil, errors.New("DISCORD_TOKEN is required")
	}
	if cfg.Discord.SyncCommands && (cfg.Discord.ApplicationID == "" || cfg.Discord.GuildID == "") {
		return nil, errors.New("DISCORD_APPLICATION_ID and DISCORD_GUILD_ID are required for command sync")
	}

	return cfg, nil
}

// Addr returns the ops HTTP bind address.
func (o OpsConfig) Addr() string {
	return fmt.Sprintf("%s:%s", o.Host, o.Port)
}

// MemberCacheTTL returns the member cache expiry duration.
func (o OpsConfig) MemberCacheTTL() time.Duration {
	if o.MemberCacheTTLSec <= 0 {
		return time.Minute
	}
	return time.Duration(o.MemberCacheTTLSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
