package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rupor-github/gencfg"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
document:
  output_name_template: "{{ .Title }}-{{ .Date }}"
  file_name_transliterate: true
  export_project_json: true
  images:
    max_dimension: 1200
    jpeg_quality_level: 70
    optimize: false
  fonts:
    stylesheet_url: https://fonts.example/css2?family=Pacifico
network:
  timeout_seconds: 10
logging:
  console:
    level: normal
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "test-report.zip") + `
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}

	if cfg.Document.OutputNameTemplate != "{{ .Title }}-{{ .Date }}" {
		t.Errorf("OutputNameTemplate = %q", cfg.Document.OutputNameTemplate)
	}

	if !cfg.Document.FileNameTransliterate {
		t.Error("Expected FileNameTransliterate to be true")
	}

	if cfg.Document.Images.MaxDimension != 1200 {
		t.Errorf("MaxDimension = %d, want 1200", cfg.Document.Images.MaxDimension)
	}

	if cfg.Document.Images.JPEGQuality != 70 {
		t.Errorf("JPEGQuality = %d, want 70", cfg.Document.Images.JPEGQuality)
	}

	if cfg.Document.Fonts.StylesheetURL != "https://fonts.example/css2?family=Pacifico" {
		t.Errorf("StylesheetURL = %q", cfg.Document.Fonts.StylesheetURL)
	}

	if cfg.Network.Timeout() != 10*time.Second {
		t.Errorf("Timeout() = %v, want 10s", cfg.Network.Timeout())
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")

	configWithUnknown := `version: 1
unknown_field: value
document:
  file_name_transliterate: true
`

	if err := os.WriteFile(configPath, []byte(configWithUnknown), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_values.yaml")

	// JPEG quality below the allowed range
	badConfig := `version: 1
document:
  images:
    jpeg_quality_level: 5
`

	if err := os.WriteFile(configPath, []byte(badConfig), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected validation error for bad jpeg quality")
	}
}

func TestLoadConfiguration_BadVersion(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad_version.yaml")

	if err := os.WriteFile(configPath, []byte("version: 2\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("Expected validation error for unsupported version")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	// Verify it's valid YAML by trying to unmarshal
	cfg := &Config{}
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Document: DocumentConfig{
			OutputNameTemplate: "{{ .Title }}",
			Images: ImagesConfig{
				MaxDimension: 1600,
				JPEGQuality:  85,
				Optimize:     true,
			},
		},
		Network: NetworkConfig{TimeoutSec: 30},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Dump() returned empty data")
	}

	// Verify we can load it back
	cfg2 := &Config{}
	_, err = unmarshalConfig(data, cfg2, false)
	if err != nil {
		t.Errorf("Dumped config cannot be loaded: %v", err)
	}

	if cfg2.Document.Images.MaxDimension != cfg.Document.Images.MaxDimension {
		t.Errorf("MaxDimension mismatch after dump/load: got %d, want %d",
			cfg2.Document.Images.MaxDimension, cfg.Document.Images.MaxDimension)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Document.Images.MaxDimension <= 0 {
		t.Errorf("MaxDimension = %d, should be positive by default", cfg.Document.Images.MaxDimension)
	}

	if cfg.Document.Images.JPEGQuality < 40 || cfg.Document.Images.JPEGQuality > 100 {
		t.Errorf("JPEGQuality = %d, should be between 40 and 100", cfg.Document.Images.JPEGQuality)
	}

	if cfg.Document.OutputNameTemplate == "" {
		t.Error("OutputNameTemplate should have a default")
	}

	if cfg.Network.Timeout() <= 0 {
		t.Errorf("Timeout() = %v, should be positive by default", cfg.Network.Timeout())
	}

	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Console log level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}

	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("File log level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	// Partial config that only overrides some values
	partialConfig := `version: 1
document:
  export_project_json: true
`

	if err := os.WriteFile(configPath, []byte(partialConfig), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if !cfg.Document.ExportProjectJSON {
		t.Error("Expected ExportProjectJSON to be true from config file")
	}

	// Defaults survive for unspecified fields
	if cfg.Document.Images.MaxDimension <= 0 {
		t.Error("MaxDimension should keep its default value")
	}
	if cfg.Document.OutputNameTemplate == "" {
		t.Error("OutputNameTemplate should keep its default value")
	}
}
