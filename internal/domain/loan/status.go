package loan

import "github.com/BruksfildServices01/cabin-scheduler/internal/httperr"

type Status string

const (
	StatusActive   Status = "active"
	StatusReturned Status = "returned"
	StatusLost     Status = "lost"
)

func (s Status) IsTerminal() bool {
	return s == StatusReturned || s == StatusLost
}

func CanReturn(current Status) error {
	if current != StatusActive {
		return invalidTransition(current, StatusReturned)
	}
	return nil
}

func CanMarkLost(current Status) error {
	if current != StatusActive {
		return invalidTransition(current, StatusLost)
	}
	return nil
}

func invalidTransition(current, target Status) error {
	return httperr.ErrConflict("invalid_state", map[string]any{
		"current_status": string(current),
		"target_status":  string(target),
	})
}
