package main

import (
	"os"

	"github.com/joho/godotenv"

	"roomitor/internal/client"
	"roomitor/internal/config"
	"roomitor/internal/logging"
	"roomitor/internal/monitor"
	"roomitor/internal/notify"
	"roomitor/internal/state"
)

// roomitor performs a single availability check and exits; run it from cron
// or a CI schedule for continuous monitoring. Exit code 1 means the
// configuration is unusable, everything else (including a failed fetch,
// which is logged and retried on the next scheduled run) exits 0.
func main() {
	// A .env file is optional and never overrides the real environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("info")
		fallback.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel)

	session, err := client.NewSession(cfg.UserAgent)
	if err != nil {
		log.Error().Err(err).Msg("failed to build http session")
		os.Exit(1)
	}

	webhook, err := notify.NewDiscord(cfg.WebhookURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to build webhook client")
		os.Exit(1)
	}

	m := monitor.New(monitor.Target{
		URL:       cfg.TargetURL,
		StartDate: cfg.StartDate,
		EndDate:   cfg.EndDate,
		RoomID:    cfg.RoomID,
	}, session, state.NewFileStore(cfg.StatePath), webhook, log)

	outcome := m.Run()
	log.Debug().Stringer("outcome", outcome).Msg("pass finished")

	if cfg.StopOnAvailable && outcome == monitor.OutcomeNotified {
		// State is already persisted; the scheduler can stop re-invoking.
		log.Info().Msg("STOP_ON_AVAILABLE is set; stop scheduling further runs")
	}
}
