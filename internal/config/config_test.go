package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test parser defaults
	if cfg.Parser.StrictNormals {
		t.Error("expected strict normals to be false by default")
	}
	if cfg.Parser.Encoding != "" {
		t.Errorf("expected empty encoding, got %s", cfg.Parser.Encoding)
	}
	if !cfg.Parser.ResolveRelative {
		t.Error("expected resolve_relative to be true by default")
	}
	if cfg.Parser.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Parser.Workers)
	}

	// Test output defaults
	if cfg.Output.Format != FormatText {
		t.Errorf("expected format 'text', got %s", cfg.Output.Format)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
parser:
  strict_normals: true
  encoding: "windows-1252"
  resolve_relative: false
  workers: 8

output:
  format: "yaml"

logging:
  level: "debug"
  log_file: "objtool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if !cfg.Parser.StrictNormals {
		t.Error("expected strict normals to be true")
	}
	if cfg.Parser.Encoding != "windows-1252" {
		t.Errorf("expected encoding windows-1252, got %s", cfg.Parser.Encoding)
	}
	if cfg.Parser.ResolveRelative {
		t.Error("expected resolve_relative to be false")
	}
	if cfg.Parser.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.Parser.Workers)
	}

	if cfg.Output.Format != FormatYAML {
		t.Errorf("expected format 'yaml', got %s", cfg.Output.Format)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "objtool.log" {
		t.Errorf("expected log file 'objtool.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("output:\n  format: yaml\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Values absent from the file keep their defaults
	if !cfg.Parser.ResolveRelative {
		t.Error("expected resolve_relative default to survive a partial file")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
parser:
  workers: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"yaml format", func(c *Config) { c.Output.Format = FormatYAML }, false},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, true},
		{"known encoding", func(c *Config) { c.Parser.Encoding = "shift_jis" }, false},
		{"unknown encoding", func(c *Config) { c.Parser.Encoding = "klingon-8" }, true},
		{"negative workers", func(c *Config) { c.Parser.Workers = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParserOptions(t *testing.T) {
	cfg := Default()
	if got := len(cfg.ParserOptions()); got != 4 {
		t.Errorf("expected 4 parser options, got %d", got)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Keep the user's real config out of the lookup
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create objtool.yaml in current directory
	configPath := filepath.Join(tmpDir, "objtool.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  format: yaml\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find objtool.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config) error
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) error {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				return nil
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "strict flag",
			setup: func() {
				*flagStrict = true
			},
			verify: func(cfg *Config) error {
				if !cfg.Parser.StrictNormals {
					t.Error("expected strict normals with strict flag")
				}
				return nil
			},
			teardown: func() {
				*flagStrict = false
			},
		},
		{
			name: "encoding flag",
			setup: func() {
				*flagEncoding = "euc-kr"
			},
			verify: func(cfg *Config) error {
				if cfg.Parser.Encoding != "euc-kr" {
					t.Errorf("expected encoding euc-kr, got %s", cfg.Parser.Encoding)
				}
				return nil
			},
			teardown: func() {
				*flagEncoding = ""
			},
		},
		{
			name: "format flag",
			setup: func() {
				*flagFormat = FormatYAML
			},
			verify: func(cfg *Config) error {
				if cfg.Output.Format != FormatYAML {
					t.Errorf("expected format yaml, got %s", cfg.Output.Format)
				}
				return nil
			},
			teardown: func() {
				*flagFormat = ""
			},
		},
		{
			name: "workers flag",
			setup: func() {
				*flagWorkers = 16
			},
			verify: func(cfg *Config) error {
				if cfg.Parser.Workers != 16 {
					t.Errorf("expected 16 workers, got %d", cfg.Parser.Workers)
				}
				return nil
			},
			teardown: func() {
				*flagWorkers = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
parser:
  encoding: "windows-1252"
  workers: 2
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWorkers = 12
	defer func() {
		*flagConfig = ""
		*flagWorkers = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Workers should be from flag (12), not file (2)
	if cfg.Parser.Workers != 12 {
		t.Errorf("expected 12 workers from flag, got %d", cfg.Parser.Workers)
	}

	// Encoding should be from file since no flag override
	if cfg.Parser.Encoding != "windows-1252" {
		t.Errorf("expected encoding windows-1252 from file, got %s", cfg.Parser.Encoding)
	}
}

func TestLoadRejectsInvalidFormat(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("output:\n  format: xml\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Parser.Encoding = "windows-1252"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Parser.Encoding != "windows-1252" {
		t.Errorf("expected saved encoding, got %s", loaded.Parser.Encoding)
	}
}
