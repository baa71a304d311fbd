package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// EngineConfig represents solver guardrails for the HTTP surface
type EngineConfig struct {
	MaxBatchSize      int    `yaml:"max_batch_size"`      // Max quotes per batch request
	DefaultOptionType string `yaml:"default_option_type"` // "call" or "put" when a quote omits it
	EnableBenchmarks  bool   `yaml:"enable_benchmarks"`   // Expose the Newton-Raphson comparison field
}

type Config struct {
	// Server settings
	Port string

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
	// Engine settings
	Engine EngineConfig `yaml:"engine"`
}

type YAMLConfig struct {
	Port    string        `yaml:"port"`
	Logging LoggingConfig `yaml:"logging"`
	Engine  EngineConfig  `yaml:"engine"`
}

func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Logging: LoggingConfig{
			LogLevel: getEnv("LOG_LEVEL", "info"),
			LogFile:  getEnv("LOG_FILE", "letsberational.log"),
		},
		Engine: EngineConfig{
			MaxBatchSize:      getEnvInt("ENGINE_MAX_BATCH_SIZE", 10000),
			DefaultOptionType: getEnv("ENGINE_DEFAULT_OPTION_TYPE", "call"),
			EnableBenchmarks:  getEnvBool("ENGINE_ENABLE_BENCHMARKS", false),
		},
	}

	// Try to load from YAML file; explicit YAML values win over defaults
	// and environment. enable_benchmarks is always taken from the file
	// when one is loaded, so an omitted key reads as false.
	if yamlCfg := loadYAMLConfig(); yamlCfg != nil {
		if yamlCfg.Port != "" {
			cfg.Port = yamlCfg.Port
		}
		if yamlCfg.Logging.LogLevel != "" {
			cfg.Logging.LogLevel = yamlCfg.Logging.LogLevel
		}
		if yamlCfg.Logging.LogFile != "" {
			cfg.Logging.LogFile = yamlCfg.Logging.LogFile
		}
		if yamlCfg.Engine.MaxBatchSize > 0 {
			cfg.Engine.MaxBatchSize = yamlCfg.Engine.MaxBatchSize
		}
		if yamlCfg.Engine.DefaultOptionType != "" {
			cfg.Engine.DefaultOptionType = yamlCfg.Engine.DefaultOptionType
		}
		cfg.Engine.EnableBenchmarks = yamlCfg.Engine.EnableBenchmarks
	}

	// Validate the default option type
	switch strings.ToLower(cfg.Engine.DefaultOptionType) {
	case "call", "put":
		cfg.Engine.DefaultOptionType = strings.ToLower(cfg.Engine.DefaultOptionType)
	default:
		cfg.Engine.DefaultOptionType = "call"
	}

	return cfg
}

func loadYAMLConfig() *YAMLConfig {
	data, err := os.ReadFile("config.yaml")
	if err != nil {
		// Could not read config.yaml - silently return nil
		return nil
	}

	var yamlCfg YAMLConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		// Could not parse config.yaml - silently return nil
		return nil
	}

	return &yamlCfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
