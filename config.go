package ingest

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings resolved once at process start. The destination
// and source settings are immutable for the process lifetime.
type Config struct {
	// Destination BigQuery table.
	ProjectID string
	Dataset   string
	Table     string

	// Source object on Cloud Storage.
	Bucket     string
	ObjectPath string

	Port      string
	LogLevel  string
	LogPretty bool

	SlackToken   string
	SlackChannel string
}

// LoadConfig reads configuration from the environment. A .env file is
// honored when present. All destination and source settings are required;
// an empty value is rejected here so a malformed table identifier or source
// URI can never reach BigQuery.
func LoadConfig() (*Config, error) {
	// .env is optional; the process environment wins either way.
	_ = godotenv.Load()

	cfg := &Config{
		ProjectID:    os.Getenv("GCP_PROJECT_ID"),
		Dataset:      os.Getenv("BQ_DATASET"),
		Table:        os.Getenv("BQ_TABLE_NAME"),
		Bucket:       os.Getenv("GCS_BUCKET_NAME"),
		ObjectPath:   os.Getenv("GCS_CSV_FILE_PATH"),
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogPretty:    os.Getenv("LOG_PRETTY") == "true",
		SlackToken:   os.Getenv("SLACK_TOKEN"),
		SlackChannel: os.Getenv("SLACK_CHANNEL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects empty required values.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"GCP_PROJECT_ID", c.ProjectID},
		{"BQ_DATASET", c.Dataset},
		{"BQ_TABLE_NAME", c.Table},
		{"GCS_BUCKET_NAME", c.Bucket},
		{"GCS_CSV_FILE_PATH", c.ObjectPath},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}

	if (c.SlackToken == "") != (c.SlackChannel == "") {
		return fmt.Errorf("SLACK_TOKEN and SLACK_CHANNEL must be set together")
	}

	return nil
}

// TableID returns the destination table identifier.
func (c *Config) TableID() string {
	return fmt.Sprintf("%s.%s.%s", c.ProjectID, c.Dataset, c.Table)
}

// SourceURI returns the full path of the source object beginning with gs://.
func (c *Config) SourceURI() string {
	return fmt.Sprintf("gs://%s/%s", c.Bucket, c.ObjectPath)
}

// SlackEnabled reports whether Slack notifications are configured.
func (c *Config) SlackEnabled() bool {
	return c.SlackToken != "" && c.SlackChannel != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
