// Package config loads configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"
)

// Config represents the application configuration.
//
// Fields tagged optional:"true" may be absent: a missing admin password
// disables login (the public gallery stays up), and a missing session
// secret falls back to the development constant.
type Config struct {
	AppName          string `env:"PF_API_APP_NAME"`
	AppVersion       string `env:"PF_API_APP_VERSION"`
	AppEnv           string `env:"PF_API_APP_ENV"`
	ServerPort       string `env:"PF_API_SERVER_PORT"`
	PostgresDsn      string `env:"PF_API_PG_DSN"`
	PostgresLogLevel string `env:"PF_API_PG_LOG_LEVEL"`
	RedisURL         string `env:"PF_API_REDIS_URL"`
	AdminPassword    string `env:"PF_API_ADMIN_PASSWORD" optional:"true"`
	SessionSecret    string `env:"PF_API_SESSION_SECRET" optional:"true"`
	S3Endpoint       string `env:"PF_API_S3_ENDPOINT"`
	S3Region         string `env:"PF_API_S3_REGION"`
	S3Bucket         string `env:"PF_API_S3_BUCKET"`
	S3AccessKey      string `env:"PF_API_S3_ACCESS_KEY"`
	S3SecretKey      string `env:"PF_API_S3_SECRET_KEY"`
	S3PublicBaseURL  string `env:"PF_API_S3_PUBLIC_BASE_URL"`
}

var (
	SingleLine string = "--------------------------------------------------"
)

var (
	instance *Config
	once     sync.Once
	err      error
)

// Get returns the application configuration
func Get() (*Config, error) {
	once.Do(func() {
		instance, err = loadConfig()
	})
	return instance, err
}

// loadConfig loads configuration from environment variables
func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProduction reports whether the server runs in production mode,
// which controls the Secure flag on the session cookie.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() error {
	t := reflect.TypeOf(*c)
	v := reflect.ValueOf(c).Elem()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		envTag := field.Tag.Get("env")
		if envTag == "" {
			return fmt.Errorf("missing env tag for field %s", field.Name)
		}

		value := os.Getenv(envTag)
		if value == "" && field.Tag.Get("optional") != "true" {
			return fmt.Errorf("env variable %s is required but not set", envTag)
		}

		v.Field(i).SetString(value)
	}

	return nil
}

// String returns the configuration as a string
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n--------------------------------------\n")
	sb.WriteString("Configuration:\n")
	sb.WriteString("--------------------------------------\n")

	t := reflect.TypeOf(*c)
	v := reflect.ValueOf(*c)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i).String()

		// Mask sensitive fields
		value = maskSensitiveField(field.Name, value)
		sb.WriteString(fmt.Sprintf("  %s:  %s\n", field.Name, value))
	}

	sb.WriteString("--------------------------------------\n")

	return sb.String()
}

func maskSensitiveField(fieldName, value string) string {
	sensitiveFields := []string{"dsn", "secret", "password", "key", "url"}

	fieldNameLower := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFields {
		if strings.Contains(fieldNameLower, sensitive) {
			return maskValue(value)
		}
	}

	return value
}

func maskValue(value string) string {
	if len(value) <= 3 {
		return strings.Repeat("*", 7)
	}
	return value[:3] + strings.Repeat("*", 7)
}
