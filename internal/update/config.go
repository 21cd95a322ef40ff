package update

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type StoreKind string

const (
	StoreSQLite StoreKind = "sqlite"
	StoreFile   StoreKind = "file"
)

type RuntimeConfig struct {
	Store                StoreKind
	DBPath               string
	DataDir              string
	DesktopNotifications bool
	TickInterval         time.Duration
	RolloverInterval     time.Duration
	EventBuffer          int
	LogFile              string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Store:                StoreSQLite,
		DBPath:               ".dayboard.db",
		DataDir:              ".dayboard",
		DesktopNotifications: true,
		TickInterval:         time.Second,
		RolloverInterval:     10 * time.Second,
		EventBuffer:          64,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("DAYBOARD_STORE"); ok {
		switch StoreKind(strings.ToLower(v)) {
		case StoreSQLite:
			cfg.Store = StoreSQLite
		case StoreFile:
			cfg.Store = StoreFile
		}
	}
	if v, ok := getEnvString("DAYBOARD_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("DAYBOARD_DATA_DIR"); ok {
		cfg.DataDir = v
	}
	if v, ok := getEnvBool("DAYBOARD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("DAYBOARD_TICK_MS"); ok && v > 0 {
		cfg.TickInterval = time.Duration(v) * time.Millisecond
	}
	if v, ok := getEnvInt("DAYBOARD_ROLLOVER_MS"); ok && v > 0 {
		cfg.RolloverInterval = time.Duration(v) * time.Millisecond
	}
	if v, ok := getEnvInt("DAYBOARD_EVENT_BUFFER"); ok && v > 0 {
		cfg.EventBuffer = v
	}
	if v, ok := getEnvString("DAYBOARD_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
