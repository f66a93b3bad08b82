package monitor

// Source produces the raw availability payload for one check. The two calls
// must share one cookie session, token first.
type Source interface {
	FetchToken(targetURL string) (string, error)
	FetchAvailability(targetURL, startDate, endDate, roomID, token string) (any, error)
}

// Store persists the availability observed by the most recent completed pass.
type Store interface {
	Load() (bool, error)
	Save(available bool) error
}

// Notifier delivers a human-readable alert.
type Notifier interface {
	Notify(message string) error
}

// Target identifies what one pass checks.
type Target struct {
	URL       string
	StartDate string // inclusive, YYYY-MM-DD
	EndDate   string // exclusive, YYYY-MM-DD
	RoomID    string
}

// Outcome reports how a pass ended.
type Outcome int

const (
	// OutcomeFetchFailed means a network step failed and the stored state
	// was left untouched.
	OutcomeFetchFailed Outcome = iota
	// OutcomeNoChange means the signal was computed and persisted without
	// crossing the unavailable-to-available edge.
	OutcomeNoChange
	// OutcomeNotified means the edge was crossed and the alert was delivered.
	OutcomeNotified
	// OutcomeNotifyFailed means the edge was crossed but the alert delivery
	// failed; the new state was still persisted, so the alert is lost rather
	// than repeated.
	OutcomeNotifyFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFetchFailed:
		return "fetch-failed"
	case OutcomeNoChange:
		return "no-change"
	case OutcomeNotified:
		return "notified"
	case OutcomeNotifyFailed:
		return "notify-failed"
	}
	return "unknown"
}
