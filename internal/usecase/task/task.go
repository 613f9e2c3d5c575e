package task

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/task"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

type ListTasks struct {
	repo domain.Repository
}

func NewListTasks(repo domain.Repository) *ListTasks {
	return &ListTasks{repo: repo}
}

// Execute: trabalhador lista as próprias tarefas; staff informa workerID.
func (uc *ListTasks) Execute(
	ctx context.Context,
	by actor.Actor,
	workerID uint,
	status *domain.Status,
) ([]models.WorkerTask, error) {

	switch {
	case by.Is(actor.RoleWorker):
		workerID = by.UserID
	case by.IsStaff():
		if workerID == 0 {
			workerID = by.UserID
		}
	default:
		return nil, httperr.ErrForbidden("forbidden")
	}

	return uc.repo.ListByWorker(ctx, workerID, status)
}

type UpdateTaskStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewUpdateTaskStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *UpdateTaskStatus {
	return &UpdateTaskStatus{repo: repo, audit: audit, clock: clock}
}

func (uc *UpdateTaskStatus) Execute(
	ctx context.Context,
	by actor.Actor,
	taskID uint,
	status string,
) (*models.WorkerTask, error) {

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	t, err := uc.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !by.IsStaff() && !(by.Is(actor.RoleWorker) && by.Owns(t.WorkerID)) {
		return nil, httperr.ErrForbidden("forbidden")
	}

	if err := domain.Transition(t, to, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &by.UserID,
		Action:   "task_" + string(to),
		Entity:   "worker_task",
		EntityID: &t.ID,
	})

	return t, nil
}
