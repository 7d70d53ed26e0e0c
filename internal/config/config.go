// Package config handles objtool configuration loading and management.
package config

import (
	"github.com/Faultbox/wavefront/internal/logger"
	"github.com/Faultbox/wavefront/pkg/wavefront"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds all objtool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Parser  ParserConfig  `yaml:"parser"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ParserConfig holds OBJ/MTL parser settings.
type ParserConfig struct {
	StrictNormals   bool   `yaml:"strict_normals"`   // Reject "vn" lines with a 4th component
	Encoding        string `yaml:"encoding"`         // Source charset, empty for UTF-8
	ResolveRelative bool   `yaml:"resolve_relative"` // Look up mtllib next to the OBJ file
	Workers         int    `yaml:"workers"`          // Files parsed concurrently, 0 for no limit
}

// OutputConfig holds report settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "yaml"
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Parser: ParserConfig{
			StrictNormals:   false,
			Encoding:        "",
			ResolveRelative: true,
			Workers:         4,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// ParserOptions translates the parser settings into wavefront options.
// Diagnostics go to the global logger.
func (c *Config) ParserOptions() []wavefront.Option {
	return []wavefront.Option{
		wavefront.WithLogger(logger.Wavefront()),
		wavefront.WithStrictNormals(c.Parser.StrictNormals),
		wavefront.WithEncoding(c.Parser.Encoding),
		wavefront.WithRelativeLibraries(c.Parser.ResolveRelative),
	}
}
