package update

import (
	"testing"
	"time"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.TickInterval != time.Second || cfg.RolloverInterval != 10*time.Second {
		t.Fatalf("unexpected tick defaults: %+v", cfg)
	}
	if cfg.Store != StoreSQLite || cfg.EventBuffer != 64 {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if cfg.DBPath != ".dayboard.db" || cfg.LogFile != "" {
		t.Fatalf("unexpected path defaults: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("DAYBOARD_STORE", "FILE")
	t.Setenv("DAYBOARD_DATA_DIR", "state/data")
	t.Setenv("DAYBOARD_DESKTOP_NOTIFICATIONS", "off")
	t.Setenv("DAYBOARD_TICK_MS", "250")
	t.Setenv("DAYBOARD_ROLLOVER_MS", "5000")
	t.Setenv("DAYBOARD_EVENT_BUFFER", "128")
	t.Setenv("DAYBOARD_LOG_FILE", "dayboard.log")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications false from env")
	}
	if cfg.Store != StoreFile || cfg.DataDir != "state/data" {
		t.Fatalf("unexpected store config: %+v", cfg)
	}
	if cfg.TickInterval != 250*time.Millisecond || cfg.RolloverInterval != 5*time.Second {
		t.Fatalf("unexpected interval overrides: %+v", cfg)
	}
	if cfg.EventBuffer != 128 || cfg.LogFile != "dayboard.log" {
		t.Fatalf("unexpected config overrides: %+v", cfg)
	}
}

func TestRuntimeConfigIgnoresInvalidValues(t *testing.T) {
	t.Setenv("DAYBOARD_STORE", "postgres")
	t.Setenv("DAYBOARD_TICK_MS", "-5")
	t.Setenv("DAYBOARD_DESKTOP_NOTIFICATIONS", "perhaps")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg != DefaultRuntimeConfig() {
		t.Fatalf("invalid env values should leave defaults, got %+v", cfg)
	}
}
