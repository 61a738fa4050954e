package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.SchemasDir != "schemas" {
		t.Errorf("Expected schemas_dir to be 'schemas', got '%s'", config.SchemasDir)
	}

	if config.EcosystemsDir != "ecosystems" {
		t.Errorf("Expected ecosystems_dir to be 'ecosystems', got '%s'", config.EcosystemsDir)
	}

	if config.OutputPath != "outputs" {
		t.Errorf("Expected output_path to be 'outputs', got '%s'", config.OutputPath)
	}

	if config.Defaults.Format != "csv" {
		t.Errorf("Expected default format to be 'csv', got '%s'", config.Defaults.Format)
	}

	if config.Database.Provider != "postgresql" {
		t.Errorf("Expected database provider to be 'postgresql', got '%s'", config.Database.Provider)
	}

	if config.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", config.Database.URLEnv)
	}
}

func TestValidate(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got: %v", err)
	}

	config.Database.Provider = "oracle"
	if err := config.Validate(); err == nil {
		t.Error("Expected unsupported provider to fail validation")
	}

	config = DefaultConfig()
	config.Defaults.Format = "parquet"
	if err := config.Validate(); err == nil {
		t.Error("Expected unsupported format to fail validation")
	}
}

func TestInitializeProject(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "synthkit-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	defer os.Chdir(originalDir)

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	if err := InitializeProject(); err != nil {
		t.Fatalf("Failed to initialize project: %v", err)
	}

	configPath := filepath.Join(tempDir, ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", configPath)
	}

	dirs := []string{"schemas", "ecosystems", "outputs"}
	for _, dir := range dirs {
		dirPath := filepath.Join(tempDir, dir)
		if _, err := os.Stat(dirPath); os.IsNotExist(err) {
			t.Errorf("Directory %s was not created", dir)
		}
	}

	if err := InitializeProject(); err == nil {
		t.Error("Expected second initialization to fail, but it succeeded")
	}
}

func TestIsInitialized(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "synthkit-test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	defer os.Chdir(originalDir)

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	if IsInitialized() {
		t.Error("Expected project to not be initialized, but it was")
	}

	if err := os.WriteFile(ConfigFileName, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	if !IsInitialized() {
		t.Error("Expected project to be initialized, but it wasn't")
	}
}
