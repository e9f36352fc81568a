package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/comalice/layoutfocus/internal/primitives"
)

const (
	envPrefix         = "LAYOUTFOCUS"
	envConfigPath     = "LAYOUTFOCUS_CONFIG"
	defaultConfigPath = "~/.config/layoutfocus/config.toml"
	defaultRecordDir  = "~/.local/share/layoutfocus/sessions"
)

// Config holds application configuration.
type Config struct {
	Env    string       `mapstructure:"env" toml:"env"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
	Record RecordConfig `mapstructure:"record" toml:"record"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// RecordConfig controls where session transcripts are written.
type RecordConfig struct {
	Dir    string `mapstructure:"dir" toml:"dir"`
	Format string `mapstructure:"format" toml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Env:    "production",
		Log:    LogConfig{Level: "info", Format: "text"},
		Record: RecordConfig{Dir: mustExpand(defaultRecordDir), Format: "yaml"},
	}
}

// Mode maps Env to a validation mode.
func (c Config) Mode() (primitives.Mode, error) {
	return primitives.ParseMode(c.Env)
}

// Path resolves the config file location: path when given, else
// $LAYOUTFOCUS_CONFIG, else ~/.config/layoutfocus/config.toml.
func Path(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = os.Getenv(envConfigPath)
	}
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	return expandPath(path)
}

// Load reads configuration from file and env. Env var overrides use prefix
// LAYOUTFOCUS_. A missing file is only an error when path was given
// explicitly.
func Load(path string) (Config, error) {
	explicit := strings.TrimSpace(path) != "" || os.Getenv(envConfigPath) != ""
	resolved, err := Path(path)
	if err != nil {
		return Config{}, err
	}

	def := Default()
	v := viper.New()
	v.SetDefault("env", def.Env)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("record.dir", def.Record.Dir)
	v.SetDefault("record.format", def.Record.Format)

	v.SetConfigType("toml")
	v.SetConfigFile(resolved)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if _, err := os.Stat(resolved); err == nil || explicit {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", resolved, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("stat config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Record.Dir = mustExpand(c.Record.Dir)
	if _, err := c.Mode(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Save writes cfg as TOML to path (resolved like Load), creating the
// directory if needed.
func Save(path string, cfg Config) error {
	resolved, err := Path(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
