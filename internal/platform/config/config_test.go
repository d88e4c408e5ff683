package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"focusd/internal/platform/config"
	apperrors "focusd/internal/platform/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "focusd.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	if cfg.WorkDuration != 120*time.Minute || cfg.BreakDuration != 7*time.Minute {
		t.Fatalf("unexpected cycle defaults: %s/%s", cfg.WorkDuration, cfg.BreakDuration)
	}
	if cfg.Night.StartHour != 0 || cfg.Night.EndHour != 6 {
		t.Fatalf("unexpected night window: [%d,%d)", cfg.Night.StartHour, cfg.Night.EndHour)
	}
	if len(cfg.TimeSync.Servers) != 4 || cfg.TimeSync.Servers[0] != "pool.ntp.org" {
		t.Fatalf("unexpected reference servers: %v", cfg.TimeSync.Servers)
	}
	if cfg.TimeSync.AttemptTimeout != 5*time.Second || cfg.TimeSync.ResyncInterval != time.Hour {
		t.Fatalf("unexpected sync intervals: %s/%s", cfg.TimeSync.AttemptTimeout, cfg.TimeSync.ResyncInterval)
	}
	if len(cfg.BreakActivities) == 0 {
		t.Fatalf("defaults must carry break activities")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.WorkDuration != config.Default().WorkDuration {
		t.Fatalf("missing file must yield defaults, got %s", cfg.WorkDuration)
	}
}

func TestLoadOverridesOverDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
work_duration: 45m
night:
  start_hour: 22
  end_hour: 24
time_sync:
  servers:
    - ntp.internal
  resync_interval: 30m
enforcer:
  binary: /usr/local/libexec/focusd-enforcer
log_level: debug
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.WorkDuration != 45*time.Minute {
		t.Fatalf("work_duration override lost: %s", cfg.WorkDuration)
	}
	if cfg.BreakDuration != 7*time.Minute {
		t.Fatalf("untouched fields must keep defaults, got %s", cfg.BreakDuration)
	}
	if cfg.Night.StartHour != 22 || cfg.Night.EndHour != 24 {
		t.Fatalf("night override lost: [%d,%d)", cfg.Night.StartHour, cfg.Night.EndHour)
	}
	if len(cfg.TimeSync.Servers) != 1 || cfg.TimeSync.Servers[0] != "ntp.internal" {
		t.Fatalf("server override lost: %v", cfg.TimeSync.Servers)
	}
	if cfg.TimeSync.ResyncInterval != 30*time.Minute || cfg.TimeSync.AttemptTimeout != 5*time.Second {
		t.Fatalf("interval handling wrong: %s/%s", cfg.TimeSync.ResyncInterval, cfg.TimeSync.AttemptTimeout)
	}
	if cfg.Enforcer.Binary != "/usr/local/libexec/focusd-enforcer" {
		t.Fatalf("enforcer binary override lost: %q", cfg.Enforcer.Binary)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level override lost: %q", cfg.LogLevel)
	}
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "work_duration: twohours\n")
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected a parse error for a malformed duration")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		body string
		want error
	}{
		{"zero work", "work_duration: 0s\n", apperrors.ErrInvalidDuration},
		{"inverted window", "night:\n  start_hour: 8\n  end_hour: 3\n", apperrors.ErrInvalidWindow},
		{"window past midnight", "night:\n  end_hour: 25\n", apperrors.ErrInvalidWindow},
		{"zero resync", "time_sync:\n  resync_interval: 0s\n", apperrors.ErrInvalidDuration},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, tc.body)
			if _, err := config.Load(path); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
