package reservation

import "github.com/BruksfildServices01/cabin-scheduler/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// BlockingStatuses ocupam a cabana para fins de sobreposição.
func BlockingStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}

func InitialStatus() Status {
	return StatusPending
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return invalidTransition(current, StatusConfirmed)
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return invalidTransition(current, StatusCancelled)
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return invalidTransition(current, StatusCompleted)
	}
	return nil
}

func invalidTransition(current, target Status) error {
	return httperr.ErrConflict("invalid_state", map[string]any{
		"current_status": string(current),
		"target_status":  string(target),
	})
}
