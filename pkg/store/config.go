package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/tripcraft/pkg/logging"
	"tableflip.dev/tripcraft/pkg/timeline"
)

// Config is the resolved runtime configuration.
type Config interface {
	BasePath() string
	Backend() string
	Logging() logging.Config
	Timeline() timeline.Config
}

// LoadConfig reads .tripcraft.yaml from $TRIPCRAFT_CONFIG_PATH or the working
// directory, then applies TRIPCRAFT_* environment overrides. A missing file is
// not an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(".tripcraft") // .yaml is implicit
	v.SetEnvPrefix("TRIPCRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("TRIPCRAFT_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:   path,
		Driver: v.GetString("backend"),
		Log: logging.Config{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Grid: timeline.Config{
			HourHeight:      v.GetFloat64("timeline.hour_height"),
			Snap:            v.GetInt("timeline.snap"),
			MinDuration:     v.GetInt("timeline.min_duration"),
			MaxDuration:     v.GetInt("timeline.max_duration"),
			DefaultDuration: v.GetInt("timeline.default_duration"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	grid := timeline.DefaultConfig()
	v.SetDefault("path", "~/.tripcraft.db")
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("timeline.hour_height", grid.HourHeight)
	v.SetDefault("timeline.snap", grid.Snap)
	v.SetDefault("timeline.min_duration", grid.MinDuration)
	v.SetDefault("timeline.max_duration", grid.MaxDuration)
	v.SetDefault("timeline.default_duration", grid.DefaultDuration)
}

// StaticConfig is a Config with fixed values, for tests and embedding.
type StaticConfig struct {
	Path   string
	Driver string
	Log    logging.Config
	Grid   timeline.Config
}

func (s StaticConfig) BasePath() string          { return s.Path }
func (s StaticConfig) Backend() string           { return s.Driver }
func (s StaticConfig) Logging() logging.Config   { return s.Log }
func (s StaticConfig) Timeline() timeline.Config { return s.Grid }

type fileConfig struct {
	Path   string          `json:"path"`
	Driver string          `json:"backend"`
	Log    logging.Config  `json:"log"`
	Grid   timeline.Config `json:"timeline"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Backend() string {
	return f.Driver
}

func (f *fileConfig) Logging() logging.Config {
	return f.Log
}

func (f *fileConfig) Timeline() timeline.Config {
	return f.Grid
}
