package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/pders01/quip/internal/validation"
)

type Config struct {
	Source   SourceConfig   `mapstructure:"source"`
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
	Keys     KeyConfig      `mapstructure:"keys"`
}

// SourceConfig locates the quote document. Location is an http(s) URL, a
// file path (optionally file://) or bolt://<database path>.
type SourceConfig struct {
	Location string `mapstructure:"location"`

	// HTTPTimeout of zero means requests never time out.
	HTTPTimeout  time.Duration `mapstructure:"http_timeout"`
	UserAgent    string        `mapstructure:"user_agent"`
	AllowPrivate bool          `mapstructure:"allow_private"`
}

type DatabaseConfig struct {
	Path    string        `mapstructure:"path"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type UIConfig struct {
	// Style is a glamour style name ("auto", "dark", "light", "notty").
	Style            string   `mapstructure:"style"`
	Colors           UIColors `mapstructure:"colors"`
	WordWrapMaxWidth int      `mapstructure:"word_wrap_max_width"`
	WordWrapMinWidth int      `mapstructure:"word_wrap_min_width"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
	Text      string `mapstructure:"text"`
	Muted     string `mapstructure:"muted"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type KeyConfig struct {
	Quit   string `mapstructure:"quit"`
	Submit string `mapstructure:"submit"`
	Focus  string `mapstructure:"focus"`
}

const DefaultLocation = "http://localhost:3000/quotes.json"

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Source: SourceConfig{
			Location:     DefaultLocation,
			AllowPrivate: true,
		},
		Database: DatabaseConfig{
			Path:    filepath.Join(homeDir, ".quip", "quip.db"),
			Timeout: 1 * time.Second,
		},
		UI: UIConfig{
			Colors: UIColors{
				Primary:   "#FF6B6B",
				Secondary: "#4ECDC4",
				Accent:    "#95E1D3",
				Text:      "#EAEAEA",
				Muted:     "#94A3B8",
				Error:     "#EF4444",
				Success:   "#10B981",
			},
			WordWrapMaxWidth: 100,
			WordWrapMinWidth: 30,
			Style:            "auto",
		},
		Log: LogConfig{
			Level: "error",
		},
		Keys: KeyConfig{
			Quit:   "esc",
			Submit: "enter",
			Focus:  "tab",
		},
	}
}

// DefaultPath returns ~/.config/quip/config.toml.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "quip", "config.toml")
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	for key, value := range settings(defaultConfig()) {
		v.SetDefault(key, value)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("QUIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := expandPaths(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func expandPaths(cfg *Config) error {
	if cfg.Database.Path != "" {
		p, err := validation.ExpandPath(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("database path: %w", err)
		}
		cfg.Database.Path = p
	}
	if cfg.Log.File != "" {
		p, err := validation.ExpandPath(cfg.Log.File)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		cfg.Log.File = p
	}
	return nil
}

// settings flattens cfg into dotted viper keys. Durations are written as
// strings so the TOML stays readable.
func settings(cfg *Config) map[string]any {
	return map[string]any{
		"source.location":        cfg.Source.Location,
		"source.http_timeout":    cfg.Source.HTTPTimeout.String(),
		"source.user_agent":      cfg.Source.UserAgent,
		"source.allow_private":   cfg.Source.AllowPrivate,
		"database.path":          cfg.Database.Path,
		"database.timeout":       cfg.Database.Timeout.String(),
		"ui.style":               cfg.UI.Style,
		"ui.colors.primary":      cfg.UI.Colors.Primary,
		"ui.colors.secondary":    cfg.UI.Colors.Secondary,
		"ui.colors.accent":       cfg.UI.Colors.Accent,
		"ui.colors.text":         cfg.UI.Colors.Text,
		"ui.colors.muted":        cfg.UI.Colors.Muted,
		"ui.colors.error":        cfg.UI.Colors.Error,
		"ui.colors.success":      cfg.UI.Colors.Success,
		"ui.word_wrap_max_width": cfg.UI.WordWrapMaxWidth,
		"ui.word_wrap_min_width": cfg.UI.WordWrapMinWidth,
		"log.level":              cfg.Log.Level,
		"log.file":               cfg.Log.File,
		"keys.quit":              cfg.Keys.Quit,
		"keys.submit":            cfg.Keys.Submit,
		"keys.focus":             cfg.Keys.Focus,
	}
}

// nested turns dotted keys into nested tables.
func nested(flat map[string]any) map[string]any {
	root := map[string]any{}
	for key, value := range flat {
		parts := strings.Split(key, ".")
		m := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := m[part].(map[string]any)
			if !ok {
				child = map[string]any{}
				m[part] = child
			}
			m = child
		}
		m[parts[len(parts)-1]] = value
	}
	return root
}

func Save(config *Config, path string) error {
	v := viper.New()
	for key, value := range settings(config) {
		v.Set(key, value)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

// Render returns cfg as a TOML document.
func Render(cfg *Config) (string, error) {
	data, err := toml.Marshal(nested(settings(cfg)))
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return string(data), nil
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
