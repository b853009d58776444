package config

// Config represents the complete Sorrel configuration
type Config struct {
	BaseDir     string        `yaml:"-"` // Directory containing config file, for resolving relative paths
	StartupDir  string        `yaml:"startup_dir"`  // Directory the first shell opens in (default: current directory)
	HistoryFile string        `yaml:"history_file"` // Path to the REPL history file (default: ~/.sorrel_history)
	Prompt      string        `yaml:"prompt"`       // Prompt text; %p expands to the current shell path
	Logging     LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Output string `yaml:"output"` // stderr, stdout, or file path
}

// Defaults returns a Config with sensible defaults
func Defaults() *Config {
	return &Config{
		StartupDir:  "",
		HistoryFile: "",
		Prompt:      "%p> ",
		Logging: LoggingConfig{
			Level:  "warn",
			Output: "stderr",
		},
	}
}
