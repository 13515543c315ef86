package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Settings are the tunable application defaults loaded from salespulse.yaml.
type Settings struct {
	DefaultRange    string `mapstructure:"defaultRange"`
	DefaultTimeZone string `mapstructure:"defaultTimeZone"`
	MaxCustomDays   int    `mapstructure:"maxCustomDays"`
}

func DefaultSettings() Settings {
	return Settings{
		DefaultRange:    "30d",
		DefaultTimeZone: "UTC",
		MaxCustomDays:   366,
	}
}

type SettingsHolder struct {
	current atomic.Value // holds Settings
}

func NewSettingsHolder() (*SettingsHolder, error) {
	v := viper.New()

	v.SetConfigName("salespulse")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/salespulse/config")
	v.AddConfigPath("/etc/salespulse")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SALESPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultSettings()
		v.SetDefault("settings.defaultRange", defaults.DefaultRange)
		v.SetDefault("settings.defaultTimeZone", defaults.DefaultTimeZone)
		v.SetDefault("settings.maxCustomDays", defaults.MaxCustomDays)
	}

	var cfg Settings
	if err := v.UnmarshalKey("settings", &cfg); err != nil {
		return nil, err
	}
	if err := validateSettings(cfg); err != nil {
		return nil, err
	}

	holder := &SettingsHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated Settings
		if err := v.UnmarshalKey("settings", &updated); err != nil {
			log.Printf("[settings] reload failed: %v", err)
			return
		}
		if err := validateSettings(updated); err != nil {
			log.Printf("[settings] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[settings] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticSettingsHolder wraps fixed settings, bypassing file loading.
func NewStaticSettingsHolder(cfg Settings) *SettingsHolder {
	holder := &SettingsHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *SettingsHolder) Current() Settings {
	cfg, ok := h.current.Load().(Settings)
	if !ok {
		return DefaultSettings()
	}
	return cfg
}

func validateSettings(cfg Settings) error {
	switch cfg.DefaultRange {
	case "24h", "7d", "30d":
	default:
		return errors.New("defaultRange must be one of 24h, 7d, 30d")
	}
	if cfg.MaxCustomDays <= 0 {
		return errors.New("maxCustomDays must be positive")
	}
	return nil
}
