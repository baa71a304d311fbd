package config

import (
	"os"
	"testing"
)

func TestDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("ENGINE_MAX_BATCH_SIZE")
	os.Unsetenv("ENGINE_DEFAULT_OPTION_TYPE")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Engine.MaxBatchSize != 10000 {
		t.Errorf("Expected default max batch size 10000, got %d", cfg.Engine.MaxBatchSize)
	}
	if cfg.Engine.DefaultOptionType != "call" {
		t.Errorf("Expected default option type call, got %s", cfg.Engine.DefaultOptionType)
	}
	if cfg.Logging.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.Logging.LogLevel)
	}
}

func TestMaxBatchSizeEnvOverride(t *testing.T) {
	os.Setenv("ENGINE_MAX_BATCH_SIZE", "250")
	defer os.Unsetenv("ENGINE_MAX_BATCH_SIZE")

	cfg := Load()

	if cfg.Engine.MaxBatchSize != 250 {
		t.Errorf("Expected max batch size 250 from env, got %d", cfg.Engine.MaxBatchSize)
	}
}

func TestDefaultOptionTypeValidation(t *testing.T) {
	os.Setenv("ENGINE_DEFAULT_OPTION_TYPE", "straddle")
	defer os.Unsetenv("ENGINE_DEFAULT_OPTION_TYPE")

	cfg := Load()

	if cfg.Engine.DefaultOptionType != "call" {
		t.Errorf("Expected invalid option type to fall back to call, got %s", cfg.Engine.DefaultOptionType)
	}
}

func TestDefaultOptionTypePut(t *testing.T) {
	os.Setenv("ENGINE_DEFAULT_OPTION_TYPE", "PUT")
	defer os.Unsetenv("ENGINE_DEFAULT_OPTION_TYPE")

	cfg := Load()

	if cfg.Engine.DefaultOptionType != "put" {
		t.Errorf("Expected option type put, got %s", cfg.Engine.DefaultOptionType)
	}
}
