package config

import (
	"fmt"
	"strings"
)

// Validate checks that the configuration is complete for the current
// environment. Development and test tolerate empty credentials (local
// services without auth); production fails fast.
func Validate(cfg *Config) error {
	var errors []string

	for field, value := range map[string]string{
		"SERVER_PORT": cfg.ServerPort,
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_USER":     cfg.DBUser,
		"DB_NAME":     cfg.DBName,
		"REDIS_HOST":  cfg.RedisHost,
		"REDIS_PORT":  cfg.RedisPort,
	} {
		if value == "" {
			errors = append(errors, fmt.Sprintf("%s must not be empty", field))
		}
	}

	if IsProduction() {
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
		if cfg.DBSSLMode == "disable" {
			errors = append(errors, "DB_SSL_MODE must not be disable in production")
		}
		if cfg.S3Bucket != "" && cfg.AWSRegion == "" {
			errors = append(errors, "AWS_REGION is required when S3_BUCKET_NAME is set")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
