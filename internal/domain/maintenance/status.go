package maintenance

import "github.com/BruksfildServices01/cabin-scheduler/internal/httperr"

// ===============================
// Maintenance Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func BlockingStatuses() []string {
	return []string{string(StatusScheduled), string(StatusInProgress)}
}

func (s Status) IsActive() bool {
	return s == StatusScheduled || s == StatusInProgress
}

func CanStart(current Status) error {
	if current != StatusScheduled {
		return invalidTransition(current, StatusInProgress)
	}
	return nil
}

func CanComplete(current Status) error {
	if !current.IsActive() {
		return invalidTransition(current, StatusCompleted)
	}
	return nil
}

func CanCancel(current Status) error {
	if !current.IsActive() {
		return invalidTransition(current, StatusCancelled)
	}
	return nil
}

func invalidTransition(current, target Status) error {
	return httperr.ErrConflict("invalid_state", map[string]any{
		"current_status": string(current),
		"target_status":  string(target),
	})
}

// ===============================
// Category / Priority
// ===============================

type Category string

const (
	CategoryPreventive Category = "preventive"
	CategoryCorrective Category = "corrective"
)

func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryPreventive, CategoryCorrective:
		return c, nil
	}
	return "", httperr.ErrBusiness("invalid_category")
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func ParsePriority(s string) (Priority, error) {
	switch p := Priority(s); p {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p, nil
	}
	return "", httperr.ErrBusiness("invalid_priority")
}
