package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}
	getBool := func(key string) bool {
		value, err := strconv.ParseBool(getEnv(key, "false"))
		if err != nil {
			log.Warn("Invalid boolean environment variable, using false", "key", key, "value", os.Getenv(key))
			return false
		}
		return value
	}

	return Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", BackendSQLite),
			Codec:   getEnv("STORAGE_CODEC", "json"),
			DBName:  getEnv("DB_NAME", "padel.db"),
			Turso: TursoConfig{
				PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
				AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
			},
			PostgresDSN: getEnv("POSTGRES_DSN", ""),
			RedisURL:    getEnv("REDIS_URL", ""),
			S3: S3Config{
				Bucket:          getEnv("S3_BUCKET", ""),
				Region:          getEnv("S3_REGION", "auto"),
				Endpoint:        getEnv("S3_ENDPOINT", ""),
				AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
				SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
				Prefix:          getEnv("S3_PREFIX", "padel/"),
			},
		},
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnv("SLACK_CHANNEL_ID", ""),
		},
		ProjectID:          getEnv("GCP_PROJECT", ""),
		TenantID:           getEnv("TENANT_ID", ""),
		RejectRegeneration: getBool("REJECT_REGENERATION"),
		SeedSampleData:     getBool("SEED_SAMPLE_DATA"),
	}
}

// Validate reports settings the selected backends cannot start without.
func (c Config) Validate() error {
	s := c.Storage
	switch s.Backend {
	case BackendMemory, BackendSQLite:
	case BackendTurso:
		if s.Turso.PrimaryURL == "" || s.Turso.AuthToken == "" {
			return fmt.Errorf("turso backend requires TURSO_PRIMARY_URL and TURSO_AUTH_TOKEN")
		}
	case BackendPostgres:
		if s.PostgresDSN == "" {
			return fmt.Errorf("postgres backend requires POSTGRES_DSN")
		}
	case BackendRedis:
		if s.RedisURL == "" {
			return fmt.Errorf("redis backend requires REDIS_URL")
		}
	case BackendS3:
		if s.S3.Bucket == "" {
			return fmt.Errorf("s3 backend requires S3_BUCKET")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", s.Backend)
	}
	switch s.Codec {
	case "json", "msgpack":
	default:
		return fmt.Errorf("unknown storage codec %q", s.Codec)
	}
	if (c.Slack.Token == "") != (c.Slack.ChannelID == "") {
		return fmt.Errorf("SLACK_BOT_TOKEN and SLACK_CHANNEL_ID must be set together")
	}
	return nil
}
