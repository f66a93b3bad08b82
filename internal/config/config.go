package config

import (
	"fmt"
	"os"
	"time"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) AccommodationMonitor/1.0 Safari/537.36"

const defaultStatePath = "availability_state.json"

// Config carries everything one monitoring pass needs. It is built once at
// startup and passed down explicitly; nothing reads the environment after
// Load returns.
type Config struct {
	TargetURL  string
	StartDate  string // inclusive, YYYY-MM-DD
	EndDate    string // exclusive, YYYY-MM-DD
	RoomID     string
	WebhookURL string

	StatePath       string
	UserAgent       string
	StopOnAvailable bool
	LogLevel        string
}

// Load reads configuration from environment variables. Any error here is
// fatal to the invocation: a misconfigured monitor must abort before it
// touches the network or the state file.
func Load() (*Config, error) {
	cfg := &Config{
		StatePath: defaultStatePath,
		UserAgent: defaultUserAgent,
		LogLevel:  "info",
	}

	var err error
	if cfg.TargetURL, err = required("TARGET_URL"); err != nil {
		return nil, err
	}
	if cfg.StartDate, err = required("START_DATE"); err != nil {
		return nil, err
	}
	if cfg.EndDate, err = required("END_DATE"); err != nil {
		return nil, err
	}
	if cfg.RoomID, err = required("ROOM_ID"); err != nil {
		return nil, err
	}
	if cfg.WebhookURL, err = required("DISCORD_WEBHOOK"); err != nil {
		return nil, err
	}

	if v := os.Getenv("STATE_FILE"); v != "" {
		cfg.StatePath = v
	}
	if v := os.Getenv("USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.StopOnAvailable = os.Getenv("STOP_ON_AVAILABLE") != ""

	for _, d := range []struct{ name, value string }{
		{"START_DATE", cfg.StartDate},
		{"END_DATE", cfg.EndDate},
	} {
		if _, perr := time.Parse("2006-01-02", d.value); perr != nil {
			return nil, fmt.Errorf("%s must be a YYYY-MM-DD date, got %q", d.name, d.value)
		}
	}

	return cfg, nil
}

func required(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", name)
	}
	return v, nil
}
