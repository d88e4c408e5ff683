package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "focusd/internal/platform/errors"
)

type Config struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration

	Night    Night
	TimeSync TimeSync
	Enforcer Enforcer

	BreakActivities []string
	LogLevel        string
}

type Night struct {
	StartHour int
	EndHour   int
}

type TimeSync struct {
	Servers        []string
	AttemptTimeout time.Duration
	ResyncInterval time.Duration
}

type Enforcer struct {
	// Binary is the path of the privileged enforcer helper. Empty means the
	// logging fallback adapter is used.
	Binary string
}

// Default mirrors the stock focus cycle: two hours of work, a seven minute
// break, and a midnight-to-six night window.
func Default() Config {
	return Config{
		WorkDuration:  120 * time.Minute,
		BreakDuration: 7 * time.Minute,
		Night:         Night{StartHour: 0, EndHour: 6},
		TimeSync: TimeSync{
			Servers: []string{
				"pool.ntp.org",
				"time.google.com",
				"time.windows.com",
				"time.apple.com",
			},
			AttemptTimeout: 5 * time.Second,
			ResyncInterval: time.Hour,
		},
		BreakActivities: []string{
			"Take time to read a Bible verse of the day, and reflect",
			"Step away from the screen and rest your eyes",
			"Go for a short walk",
			"Do some light stretching",
			"Practice deep breathing",
			"Hydrate yourself",
			"Tidy up your workspace",
		},
		LogLevel: "info",
	}
}

type fileConfig struct {
	WorkDuration  string `yaml:"work_duration"`
	BreakDuration string `yaml:"break_duration"`
	Night         struct {
		StartHour *int `yaml:"start_hour"`
		EndHour   *int `yaml:"end_hour"`
	} `yaml:"night"`
	TimeSync struct {
		Servers        []string `yaml:"servers"`
		AttemptTimeout string   `yaml:"attempt_timeout"`
		ResyncInterval string   `yaml:"resync_interval"`
	} `yaml:"time_sync"`
	Enforcer struct {
		Binary string `yaml:"binary"`
	} `yaml:"enforcer"`
	BreakActivities []string `yaml:"break_activities"`
	LogLevel        string   `yaml:"log_level"`
}

// Load reads the YAML config at path over the defaults. A missing file is not
// an error; everything then comes from Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Validate()
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.apply(fc); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) apply(fc fileConfig) error {
	var err error
	if c.WorkDuration, err = overrideDuration(c.WorkDuration, fc.WorkDuration); err != nil {
		return fmt.Errorf("work_duration: %w", err)
	}
	if c.BreakDuration, err = overrideDuration(c.BreakDuration, fc.BreakDuration); err != nil {
		return fmt.Errorf("break_duration: %w", err)
	}
	if fc.Night.StartHour != nil {
		c.Night.StartHour = *fc.Night.StartHour
	}
	if fc.Night.EndHour != nil {
		c.Night.EndHour = *fc.Night.EndHour
	}
	if len(fc.TimeSync.Servers) > 0 {
		c.TimeSync.Servers = fc.TimeSync.Servers
	}
	if c.TimeSync.AttemptTimeout, err = overrideDuration(c.TimeSync.AttemptTimeout, fc.TimeSync.AttemptTimeout); err != nil {
		return fmt.Errorf("time_sync.attempt_timeout: %w", err)
	}
	if c.TimeSync.ResyncInterval, err = overrideDuration(c.TimeSync.ResyncInterval, fc.TimeSync.ResyncInterval); err != nil {
		return fmt.Errorf("time_sync.resync_interval: %w", err)
	}
	if fc.Enforcer.Binary != "" {
		c.Enforcer.Binary = fc.Enforcer.Binary
	}
	if len(fc.BreakActivities) > 0 {
		c.BreakActivities = fc.BreakActivities
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	return nil
}

func overrideDuration(current time.Duration, value string) (time.Duration, error) {
	if value == "" {
		return current, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	return d, nil
}

func (c Config) Validate() error {
	if c.WorkDuration <= 0 || c.BreakDuration <= 0 {
		return apperrors.ErrInvalidDuration
	}
	if c.Night.StartHour < 0 || c.Night.StartHour >= c.Night.EndHour || c.Night.EndHour > 24 {
		return apperrors.ErrInvalidWindow
	}
	if c.TimeSync.AttemptTimeout <= 0 || c.TimeSync.ResyncInterval <= 0 {
		return fmt.Errorf("time_sync intervals: %w", apperrors.ErrInvalidDuration)
	}
	return nil
}
