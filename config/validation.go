package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable in the current
// environment. Development and test tolerate missing secrets; production
// does not.
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: "server port is required"})
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		errs = append(errs, ValidationError{Field: "DB_HOST/DB_PORT/DB_NAME", Message: "database host, port and name are required"})
	}

	if IsProduction() {
		if cfg.DBPassword == "" {
			errs = append(errs, ValidationError{Field: "db_password", Message: "secret is required in production"})
		}
		if cfg.JWTSecret == "" {
			errs = append(errs, ValidationError{Field: "jwt_secret", Message: "secret is required in production"})
		}
	}

	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}

	return nil
}
