// Package config holds wordrank's ambient configuration and logging setup.
// Nothing in here changes which words the pipeline prints; configuration
// only tunes logging.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	LogFile  string
	LogLevel slog.Level
}

// fileConfig is the shape of the optional YAML config file.
type fileConfig struct {
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Load reads configuration from the optional config file under the user
// config directory, then lets environment variables override it. Both
// sources are best effort; anything missing falls through to defaults.
func Load() Config {
	var file fileConfig
	if path, err := defaultConfigPath(); err == nil {
		loadFile(path, &file)
	}

	logFile := file.LogFile
	if logFile == "" {
		logFile = filepath.Join(os.TempDir(), "wordrank.log")
	}
	level := file.LogLevel
	if level == "" {
		// WARN by default: a normal run emits nothing but the word lines.
		level = "WARN"
	}

	return Config{
		LogFile:  getEnv("WORDRANK_LOG_FILE", logFile),
		LogLevel: parseLogLevel(getEnv("WORDRANK_LOG_LEVEL", level)),
	}
}

func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "wordrank", "config.yaml"), nil
}

// loadFile fills out from the YAML file at path. A missing or unparsable
// file leaves out untouched.
func loadFile(path string, out *fileConfig) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var parsed fileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return
	}
	*out = parsed
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
