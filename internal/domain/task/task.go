package task

import (
	"context"
	"time"

	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type Type string

const (
	TypeCleaning    Type = "cleaning"
	TypeMaintenance Type = "maintenance"
	TypeInventory   Type = "inventory"
	TypeOther       Type = "other"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// OpenStatuses são os que ainda podem ser fechados em cascata.
func OpenStatuses() []string {
	return []string{string(StatusPending), string(StatusInProgress)}
}

func Transition(t *models.WorkerTask, to Status, now time.Time) error {
	from := Status(t.Status)
	if from.IsTerminal() || from == to {
		return httperr.ErrConflict("invalid_state", map[string]any{
			"current_status": string(from),
			"target_status":  string(to),
		})
	}
	if from == StatusInProgress && to == StatusPending {
		return httperr.ErrConflict("invalid_state", map[string]any{
			"current_status": string(from),
			"target_status":  string(to),
		})
	}

	t.Status = string(to)
	if to == StatusCompleted {
		t.CompletedAt = &now
	}
	return nil
}

type Repository interface {
	GetTask(ctx context.Context, id uint) (*models.WorkerTask, error)
	UpdateTask(ctx context.Context, t *models.WorkerTask) error
	ListByWorker(ctx context.Context, workerID uint, status *Status) ([]models.WorkerTask, error)
}
