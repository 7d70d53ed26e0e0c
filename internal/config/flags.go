package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagStrict   = flag.Bool("strict", false, "Reject vertex normals with a stray component")
	flagEncoding = flag.String("encoding", "", "Source file charset (e.g. windows-1252)")
	flagFormat   = flag.String("format", "", "Output format: text or yaml")
	flagWorkers  = flag.Int("workers", 0, "Number of files parsed concurrently")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagStrict {
		cfg.Parser.StrictNormals = true
	}
	if *flagEncoding != "" {
		cfg.Parser.Encoding = *flagEncoding
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagWorkers > 0 {
		cfg.Parser.Workers = *flagWorkers
	}
}
