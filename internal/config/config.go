package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const envPrefix = "SWATCHBOOK_"

// Config holds settings shared by every command
type Config struct {
	Port      string `yaml:"port"`
	ImagesDir string `yaml:"images_dir"`
	PublicDir string `yaml:"public_dir"`
	LogLevel  string `yaml:"log_level"`
	ServerURL string `yaml:"server_url"`
}

func Default() Config {
	return Config{
		Port:      "8080",
		ImagesDir: "Images",
		LogLevel:  "info",
		ServerURL: "http://localhost:8080",
	}
}

// Load applies, in order, the defaults, the YAML file at path (if path is
// not empty) and SWATCHBOOK_* environment variables. PORT is honoured when
// SWATCHBOOK_PORT is unset.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	overrides := map[string]*string{
		"PORT":       &cfg.Port,
		"IMAGES_DIR": &cfg.ImagesDir,
		"PUBLIC_DIR": &cfg.PublicDir,
		"LOG_LEVEL":  &cfg.LogLevel,
		"SERVER_URL": &cfg.ServerURL,
	}
	for name, field := range overrides {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*field = v
		}
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if n, err := strconv.Atoi(c.Port); err != nil || n < 0 || n > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %q", c.Port))
	}
	if c.ImagesDir == "" {
		errs = append(errs, errors.New("images_dir is required"))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel converts a level name into a slog.Level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
