package monitor

import (
	"fmt"

	"github.com/rs/zerolog"

	"roomitor/internal/availability"
)

// Monitor performs one availability pass over a single target: fetch the
// payload, derive the signal, compare it against the previous pass and
// alert exactly on the unavailable-to-available edge.
type Monitor struct {
	target   Target
	source   Source
	store    Store
	notifier Notifier
	log      zerolog.Logger
}

func New(target Target, source Source, store Store, notifier Notifier, log zerolog.Logger) *Monitor {
	return &Monitor{
		target:   target,
		source:   source,
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// Run executes one pass. Fetch failures end the pass before anything is
// written, so a transient outage is never recorded as an availability
// change. Every other completion persists the new signal, including when
// the notification itself fails: losing one alert is preferred over
// re-alerting on every later pass.
func (m *Monitor) Run() Outcome {
	m.log.Info().
		Str("room", m.target.RoomID).
		Str("start", m.target.StartDate).
		Str("end", m.target.EndDate).
		Str("url", m.target.URL).
		Msg("checking availability")

	token, err := m.source.FetchToken(m.target.URL)
	if err != nil {
		m.log.Error().Err(err).Msg("failed to obtain csrf token")
		return OutcomeFetchFailed
	}
	m.log.Debug().Str("token", preview(token)).Msg("extracted csrf token")

	payload, err := m.source.FetchAvailability(
		m.target.URL, m.target.StartDate, m.target.EndDate, m.target.RoomID, token)
	if err != nil {
		m.log.Error().Err(err).Msg("failed to fetch availability")
		return OutcomeFetchFailed
	}

	curr := availability.Detect(payload)
	m.log.Info().Bool("available", curr).Msg("computed availability signal")

	prev, err := m.store.Load()
	if err != nil {
		m.log.Warn().Err(err).Msg("failed to load previous state, defaulting to unavailable")
	}

	outcome := OutcomeNoChange
	if curr && !prev {
		msg := fmt.Sprintf("🎉 The room (ID %s) at %s is now AVAILABLE for %s to %s!",
			m.target.RoomID, m.target.URL, m.target.StartDate, m.target.EndDate)
		if err := m.notifier.Notify(msg); err != nil {
			m.log.Error().Err(err).Msg("failed to send notification")
			outcome = OutcomeNotifyFailed
		} else {
			m.log.Info().Msg("notification sent successfully")
			outcome = OutcomeNotified
		}
	}

	if err := m.store.Save(curr); err != nil {
		m.log.Error().Err(err).Msg("failed to save state")
	}
	return outcome
}

// preview keeps tokens out of the logs; the first few characters are enough
// to correlate a pass against server-side records.
func preview(token string) string {
	if len(token) > 8 {
		return token[:8] + "…"
	}
	return token
}
