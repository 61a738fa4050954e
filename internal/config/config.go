package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const ConfigFileName = "synth.config.json"

type Config struct {
	Version       string   `json:"version" mapstructure:"version"`
	SchemasDir    string   `json:"schemas_dir" mapstructure:"schemas_dir"`
	EcosystemsDir string   `json:"ecosystems_dir" mapstructure:"ecosystems_dir"`
	OutputPath    string   `json:"output_path" mapstructure:"output_path"`
	Defaults      Defaults `json:"defaults" mapstructure:"defaults"`
	Database      Database `json:"database" mapstructure:"database"`
}

// Defaults are applied when a command does not say otherwise.
type Defaults struct {
	Format       string `json:"format" mapstructure:"format"`
	Geography    string `json:"geography" mapstructure:"geography"`
	ErrorProfile string `json:"error_profile" mapstructure:"error_profile"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

// DefaultConfig returns the configuration a fresh project starts from.
func DefaultConfig() *Config {
	return &Config{
		Version:       "1",
		SchemasDir:    "schemas",
		EcosystemsDir: "ecosystems",
		OutputPath:    "outputs",
		Defaults: Defaults{
			Format:       "csv",
			Geography:    "global",
			ErrorProfile: "none",
		},
		Database: Database{
			Provider: "postgresql",
			URLEnv:   "DATABASE_URL",
		},
	}
}

// Load unmarshals the viper-backed config and fills in defaults for any
// field the file omits.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	def := DefaultConfig()
	if cfg.Version == "" {
		cfg.Version = def.Version
	}
	if cfg.SchemasDir == "" {
		cfg.SchemasDir = def.SchemasDir
	}
	if cfg.EcosystemsDir == "" {
		cfg.EcosystemsDir = def.EcosystemsDir
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = def.OutputPath
	}
	if cfg.Defaults.Format == "" {
		cfg.Defaults.Format = def.Defaults.Format
	}
	if cfg.Defaults.Geography == "" {
		cfg.Defaults.Geography = def.Defaults.Geography
	}
	if cfg.Defaults.ErrorProfile == "" {
		cfg.Defaults.ErrorProfile = def.Defaults.ErrorProfile
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = def.Database.Provider
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = def.Database.URLEnv
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3", "mongodb"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.SchemasDir == "" {
		return fmt.Errorf("schemas_dir cannot be empty")
	}

	if c.OutputPath == "" {
		return fmt.Errorf("output_path cannot be empty")
	}

	if c.Defaults.Format != "csv" && c.Defaults.Format != "json" {
		return fmt.Errorf("unsupported default format: %s", c.Defaults.Format)
	}

	return nil
}

func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.SchemasDir,
		c.EcosystemsDir,
		c.OutputPath,
	}

	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// IsInitialized reports whether the working directory holds a config file.
func IsInitialized() bool {
	_, err := os.Stat(ConfigFileName)
	return err == nil
}

// InitializeProject writes the default config file and creates the standard
// directories. It refuses to overwrite an existing config.
func InitializeProject() error {
	if IsInitialized() {
		return fmt.Errorf("project already initialized: %s exists", ConfigFileName)
	}

	cfg := DefaultConfig()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(ConfigFileName, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg.EnsureDirectories()
}
