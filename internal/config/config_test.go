package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("REJECT_REGENERATION", "true")

	cfg := Load()
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "json", cfg.Storage.Codec)
	assert.True(t, cfg.RejectRegeneration)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"sqlite", Config{Storage: StorageConfig{Backend: BackendSQLite, Codec: "json"}}, ""},
		{"turso without token", Config{Storage: StorageConfig{Backend: BackendTurso, Codec: "json", Turso: TursoConfig{PrimaryURL: "libsql://x"}}}, "TURSO_AUTH_TOKEN"},
		{"postgres without dsn", Config{Storage: StorageConfig{Backend: BackendPostgres, Codec: "json"}}, "POSTGRES_DSN"},
		{"redis without url", Config{Storage: StorageConfig{Backend: BackendRedis, Codec: "msgpack"}}, "REDIS_URL"},
		{"s3 without bucket", Config{Storage: StorageConfig{Backend: BackendS3, Codec: "json"}}, "S3_BUCKET"},
		{"unknown backend", Config{Storage: StorageConfig{Backend: "mongo", Codec: "json"}}, "unknown storage backend"},
		{"unknown codec", Config{Storage: StorageConfig{Backend: BackendMemory, Codec: "xml"}}, "unknown storage codec"},
		{"half slack", Config{Storage: StorageConfig{Backend: BackendMemory, Codec: "json"}, Slack: SlackConfig{Token: "xoxb"}}, "SLACK_CHANNEL_ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
