package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log LogConfig `toml:"log"`
	UI  UIConfig  `toml:"ui"`
}

// LogConfig holds diagnostic output settings.
type LogConfig struct {
	Path     string `toml:"path"`
	Level    string `toml:"level"`
	Dispatch bool   `toml:"dispatch"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title       string `toml:"title"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	TooltipText string `toml:"tooltip_text" mapstructure:"tooltip_text"`
	TargetText  string `toml:"target_text" mapstructure:"target_text"`
}

// Path returns the config file location: $STREAMUI_CONFIG or
// ~/.config/streamui/config.toml.
func Path() string {
	if p := os.Getenv("STREAMUI_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "streamui", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix STREAMUI_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("log.path", "streamui.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dispatch", false)
	v.SetDefault("ui.title", "streamui")
	v.SetDefault("ui.width", 80)
	v.SetDefault("ui.height", 24)
	v.SetDefault("ui.tooltip_text", "I am a tooltip")
	v.SetDefault("ui.target_text", "hover me")

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("STREAMUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// a missing file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(Path()); !errors.Is(statErr, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg as TOML, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// EnsureFile writes cfg to Path() when no config file exists yet, so the
// first run leaves an editable file with the defaults. It reports whether
// a file was written.
func EnsureFile(cfg Config) (bool, error) {
	if _, err := os.Stat(Path()); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config: %w", err)
	}
	if err := Save(cfg); err != nil {
		return false, err
	}
	return true, nil
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
