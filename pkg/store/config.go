package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the runtime configuration read from .cyberride.yaml and the
// CYBERRIDE_* environment.
type Config interface {
	BasePath() string
	Notifications() bool
	LowEfficiency() float64
	UpcomingWindow() string
}

const (
	DefaultPath           = "~/.cyberride"
	DefaultLowEfficiency  = 15.0
	DefaultUpcomingWindow = "1w"
)

// LoadConfig reads the config file (optional) and environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("notifications", true)
	v.SetDefault("low_efficiency", DefaultLowEfficiency)
	v.SetDefault("upcoming_window", DefaultUpcomingWindow)
	v.SetConfigName(".cyberride") // .yaml is implicit
	v.SetEnvPrefix("CYBERRIDE")
	v.AutomaticEnv()

	if override := os.Getenv("CYBERRIDE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path %q: %w", v.GetString("path"), err)
	}

	return &fileConfig{
		Path:     path,
		Notify:   v.GetBool("notifications"),
		LowEff:   v.GetFloat64("low_efficiency"),
		Upcoming: v.GetString("upcoming_window"),
	}, nil
}

// StaticConfig returns a Config pinned to path with default settings.
func StaticConfig(path string) Config {
	return &fileConfig{
		Path:     path,
		Notify:   true,
		LowEff:   DefaultLowEfficiency,
		Upcoming: DefaultUpcomingWindow,
	}
}

type fileConfig struct {
	Path     string  `json:"path"`
	Notify   bool    `json:"notifications"`
	LowEff   float64 `json:"low_efficiency"`
	Upcoming string  `json:"upcoming_window"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Notifications() bool {
	return f.Notify
}

func (f *fileConfig) LowEfficiency() float64 {
	return f.LowEff
}

func (f *fileConfig) UpcomingWindow() string {
	return f.Upcoming
}
