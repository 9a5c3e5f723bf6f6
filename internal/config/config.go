package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported database drivers
const (
	DatabaseDriverMongo  = "mongo"
	DatabaseDriverMemory = "memory"
)

// Supported blob storage drivers
const (
	StorageDriverGridFS = "gridfs"
	StorageDriverMinio  = "minio"
	StorageDriverLocal  = "local"
	StorageDriverMemory = "memory"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port              string `yaml:"port" env:"PORT"`
		Mode              string `yaml:"mode" env:"SERVER_MODE"`
		ReadHeaderTimeout string `yaml:"read_header_timeout" env:"SERVER_READ_HEADER_TIMEOUT"`
		MaxMultipartMB    int    `yaml:"max_multipart_mb" env:"SERVER_MAX_MULTIPART_MB"`
	} `yaml:"server"`

	Database struct {
		Driver         string `yaml:"driver" env:"DB_DRIVER"`
		URI            string `yaml:"uri" env:"MONGODB_URI"`
		Name           string `yaml:"name" env:"DB_NAME"`
		ConnectTimeout string `yaml:"connect_timeout" env:"DB_CONNECT_TIMEOUT"`
	} `yaml:"database"`

	Storage struct {
		Driver    string `yaml:"driver" env:"STORAGE_DRIVER"`
		Bucket    string `yaml:"bucket" env:"STORAGE_BUCKET"`
		LocalPath string `yaml:"local_path" env:"STORAGE_LOCAL_PATH"`

		Minio struct {
			Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT"`
			AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
			SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
			Bucket    string `yaml:"bucket" env:"MINIO_BUCKET"`
		} `yaml:"minio"`
	} `yaml:"storage"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// The config file is optional, environment alone is enough to run
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.ReadHeaderTimeout = "10s"
	config.Server.MaxMultipartMB = 32

	// Database defaults
	config.Database.Driver = DatabaseDriverMongo
	config.Database.URI = "mongodb://localhost:27017"
	config.Database.Name = "placementPortal"
	config.Database.ConnectTimeout = "10s"

	// Storage defaults
	config.Storage.Driver = StorageDriverGridFS
	config.Storage.Bucket = "resumes"
	config.Storage.LocalPath = "uploads"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	// Recursively process the config structure and look for env tags
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if _, err := time.ParseDuration(config.Server.ReadHeaderTimeout); err != nil {
		return fmt.Errorf("invalid server read header timeout: %w", err)
	}

	switch config.Database.Driver {
	case DatabaseDriverMongo:
		if config.Database.URI == "" {
			return fmt.Errorf("database uri is required for the mongo driver")
		}
		if config.Database.Name == "" {
			return fmt.Errorf("database name is required")
		}
		if _, err := time.ParseDuration(config.Database.ConnectTimeout); err != nil {
			return fmt.Errorf("invalid database connect timeout: %w", err)
		}
	case DatabaseDriverMemory:
	default:
		return fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}

	switch config.Storage.Driver {
	case StorageDriverGridFS:
		if config.Database.Driver != DatabaseDriverMongo {
			return fmt.Errorf("gridfs storage requires the mongo database driver")
		}
		if config.Storage.Bucket == "" {
			return fmt.Errorf("storage bucket is required for gridfs")
		}
	case StorageDriverMinio:
		m := config.Storage.Minio
		if m.Endpoint == "" || m.AccessKey == "" || m.SecretKey == "" || m.Bucket == "" {
			return fmt.Errorf("minio storage requires endpoint, access key, secret key and bucket")
		}
	case StorageDriverLocal:
		if config.Storage.LocalPath == "" {
			return fmt.Errorf("storage local path is required for local storage")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unsupported storage driver %q", config.Storage.Driver)
	}

	return nil
}

// ListenAddr returns the address the HTTP server binds to
func (c *Config) ListenAddr() string {
	return ":" + c.Server.Port
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	valueLower := strings.ToLower(valueStr)
	if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
		return true
	}
	if valueLower == "false" || valueLower == "0" || valueLower == "no" {
		return false
	}

	return defaultValue
}
