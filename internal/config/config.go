package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Layout    LayoutConfig
	Theme     ThemeConfig
	Pane      PaneConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

// LayoutConfig holds split tree sizing, in terminal cells.
type LayoutConfig struct {
	HorizontalMinSize float64 `mapstructure:"horizontal_min_size"`
	VerticalMinSize   float64 `mapstructure:"vertical_min_size"`
	HandleHitboxSize  float64 `mapstructure:"handle_hitbox_size"`
}

// ThemeConfig holds colours and leader decoration settings.
type ThemeConfig struct {
	DividerColor        string   `mapstructure:"divider_color"`
	Background          string   `mapstructure:"background"`
	LeaderBorderWidth   float64  `mapstructure:"leader_border_width"`
	LeaderBorderOpacity float64  `mapstructure:"leader_border_opacity"`
	ReplicaColors       []string `mapstructure:"replica_colors"`
}

// PaneConfig holds what new panes show.
type PaneConfig struct {
	// Command, when set, makes new panes run it in a PTY sized to the pane.
	Command string
	// Markdown, when set, is a file new panes render with glamour.
	Markdown string
}

// LogConfig holds the file logger settings.
type LogConfig struct {
	Path  string
	Debug bool
}

// TelemetryConfig holds OTLP export settings. An empty endpoint disables export.
type TelemetryConfig struct {
	Endpoint    string
	ServiceName string `mapstructure:"service_name"`
	Insecure    bool
}

// Path returns the config file location: $PANEGRID_CONFIG, or
// ~/.config/panegrid/config.toml.
func Path() string {
	if p := os.Getenv("PANEGRID_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "panegrid", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("layout.horizontal_min_size", 12.0)
	v.SetDefault("layout.vertical_min_size", 4.0)
	v.SetDefault("layout.handle_hitbox_size", 4.0)
	v.SetDefault("theme.divider_color", "#444444")
	v.SetDefault("theme.background", "#1a1a1a")
	v.SetDefault("theme.leader_border_width", 1.0)
	v.SetDefault("theme.leader_border_opacity", 0.7)
	v.SetDefault("theme.replica_colors", []string{"#4EBAAA", "#E5C07B", "#C678DD", "#61AFEF", "#E06C75", "#98C379"})
	v.SetDefault("pane.command", "")
	v.SetDefault("pane.markdown", "")
	v.SetDefault("log.path", "/tmp/panegrid.log")
	v.SetDefault("log.debug", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.service_name", "panegrid")
	v.SetDefault("telemetry.insecure", true)
}

// Load reads configuration from file and env. Env var overrides use prefix
// PANEGRID_; the standard OTEL_ variables feed the telemetry section. A
// missing config file is not an error.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("PANEGRID")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = v.BindEnv("telemetry.endpoint", "PANEGRID_TELEMETRY_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	_ = v.BindEnv("telemetry.service_name", "PANEGRID_TELEMETRY_SERVICE_NAME", "OTEL_SERVICE_NAME")

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Layout.HorizontalMinSize <= 0 {
		return fmt.Errorf("layout.horizontal_min_size must be positive, got %v", c.Layout.HorizontalMinSize)
	}
	if c.Layout.VerticalMinSize <= 0 {
		return fmt.Errorf("layout.vertical_min_size must be positive, got %v", c.Layout.VerticalMinSize)
	}
	if c.Layout.HandleHitboxSize <= 0 {
		return fmt.Errorf("layout.handle_hitbox_size must be positive, got %v", c.Layout.HandleHitboxSize)
	}
	if c.Theme.LeaderBorderOpacity < 0 || c.Theme.LeaderBorderOpacity > 1 {
		return fmt.Errorf("theme.leader_border_opacity must be within [0, 1], got %v", c.Theme.LeaderBorderOpacity)
	}
	if c.Theme.LeaderBorderWidth < 0 {
		return fmt.Errorf("theme.leader_border_width must not be negative, got %v", c.Theme.LeaderBorderWidth)
	}
	return nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("layout.horizontal_min_size", cfg.Layout.HorizontalMinSize)
	v.Set("layout.vertical_min_size", cfg.Layout.VerticalMinSize)
	v.Set("layout.handle_hitbox_size", cfg.Layout.HandleHitboxSize)
	v.Set("theme.divider_color", cfg.Theme.DividerColor)
	v.Set("theme.background", cfg.Theme.Background)
	v.Set("theme.leader_border_width", cfg.Theme.LeaderBorderWidth)
	v.Set("theme.leader_border_opacity", cfg.Theme.LeaderBorderOpacity)
	v.Set("theme.replica_colors", cfg.Theme.ReplicaColors)
	v.Set("pane.command", cfg.Pane.Command)
	v.Set("pane.markdown", cfg.Pane.Markdown)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.debug", cfg.Log.Debug)
	v.Set("telemetry.endpoint", cfg.Telemetry.Endpoint)
	v.Set("telemetry.service_name", cfg.Telemetry.ServiceName)
	v.Set("telemetry.insecure", cfg.Telemetry.Insecure)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
