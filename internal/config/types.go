package config

// Config holds all configuration for the application.
type Config struct {
	Port               string
	LogLevel           string
	Storage            StorageConfig
	Slack              SlackConfig
	ProjectID          string
	TenantID           string
	RejectRegeneration bool
	SeedSampleData     bool
}

// StorageConfig selects and configures the blob store backend.
type StorageConfig struct {
	Backend     string
	Codec       string
	DBName      string
	Turso       TursoConfig
	PostgresDSN string
	RedisURL    string
	S3          S3Config
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Prefix          string
}

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendTurso    = "turso"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"
)
