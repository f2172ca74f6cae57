// Package config holds runtime configuration: defaults, layered loading
// (config file, MUXLABEL_* environment, command-line flags) and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. MUXLABEL_CONCURRENCY=8.
const EnvPrefix = "MUXLABEL"

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. Keys in config files and environment
// variables follow the mapstructure tags.
type Config struct {
	// Credits written into titles, filenames and container tags.
	MuxedBy         string `mapstructure:"muxed_by" validate:"required"`
	TelegramChannel string `mapstructure:"telegram_channel"`
	DefaultReleaser string `mapstructure:"default_releaser" validate:"required"`

	// External tools, resolved on PATH unless absolute.
	FFprobePath     string `mapstructure:"ffprobe" validate:"required"`
	FFmpegPath      string `mapstructure:"ffmpeg" validate:"required"`
	MkvpropeditPath string `mapstructure:"mkvpropedit" validate:"required"`

	// Behavior.
	Concurrency int           `mapstructure:"concurrency" validate:"min=1,max=64"` // Default: 4.
	DryRun      bool          `mapstructure:"dry_run"`
	WatchSettle time.Duration `mapstructure:"watch_settle" validate:"gte=0"` // Default: 2s.

	// Display and logging.
	Verbose   bool      `mapstructure:"verbose"`
	ColorMode ColorMode `mapstructure:"color" validate:"oneof=auto always never"`
	LogFile   string    `mapstructure:"log_file"`
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		MuxedBy:         "Ionicboy",
		TelegramChannel: "t.me/HDCLovers",
		DefaultReleaser: "FrameStor",
		FFprobePath:     "ffprobe",
		FFmpegPath:      "ffmpeg",
		MkvpropeditPath: "mkvpropedit",
		Concurrency:     4,
		DryRun:          false,
		WatchSettle:     2 * time.Second,
		Verbose:         false,
		ColorMode:       ColorAuto,
	}
}

// setDefaults registers every key so environment variables are picked up
// by Unmarshal even when no config file mentions them.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("muxed_by", d.MuxedBy)
	v.SetDefault("telegram_channel", d.TelegramChannel)
	v.SetDefault("default_releaser", d.DefaultReleaser)
	v.SetDefault("ffprobe", d.FFprobePath)
	v.SetDefault("ffmpeg", d.FFmpegPath)
	v.SetDefault("mkvpropedit", d.MkvpropeditPath)
	v.SetDefault("concurrency", d.Concurrency)
	v.SetDefault("dry_run", d.DryRun)
	v.SetDefault("watch_settle", d.WatchSettle)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("color", string(d.ColorMode))
	v.SetDefault("log_file", d.LogFile)
}

// Load resolves the configuration from v: defaults, then configFile when
// non-empty, then MUXLABEL_* environment variables, then any flags already
// bound with [BindFlags].
func Load(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks field constraints and reports the first violation in
// user-facing terms.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := verrs[0]
	switch fe.Field() {
	case "ColorMode":
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	case "Concurrency":
		return fmt.Errorf("invalid concurrency %d (use 1 to 64)", c.Concurrency)
	case "WatchSettle":
		return errors.New("watch settle period must not be negative")
	}
	return fmt.Errorf("%s: failed %q check", fe.Namespace(), fe.Tag())
}
