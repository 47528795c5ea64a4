// Package config centralizes the pipeline's fixed paths and logging
// configuration. The tool takes no environment variables and reads no
// configuration files; everything is a compiled-in default, with the base
// directory overridable from the command line for tests and ad-hoc runs.
package config

// Config holds the top-level application configuration
type Config struct {
	Logging LoggingConfig
	Paths   *Paths
}

// LoggingConfig contains structured logging configuration
type LoggingConfig struct {
	Level    string // debug | info | warn | error
	Output   string // stdout | file | both
	FilePath string
}

// Default returns the canonical configuration for a run rooted at baseDir.
func Default(baseDir string) *Config {
	paths := DefaultPaths(baseDir)
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "both",
			FilePath: paths.GetLogPath("processor.log"),
		},
		Paths: paths,
	}
}
