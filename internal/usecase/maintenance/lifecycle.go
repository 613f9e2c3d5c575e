package maintenance

import (
	"context"
	"time"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/maintenance"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/task"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

const (
	cabinAvailable        = "available"
	cabinUnderMaintenance = "under_maintenance"
)

// Lifecycle agrupa início, conclusão e cancelamento de manutenções.
type Lifecycle struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    *audit.Dispatcher
	cache    availability.CalendarCache
	clock    timezone.Clock
}

func NewLifecycle(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
	cache availability.CalendarCache,
	clock timezone.Clock,
) *Lifecycle {
	return &Lifecycle{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		cache:    cache,
		clock:    clock,
	}
}

// admin, encarregado ou o trabalhador designado
func canOperate(by actor.Actor, w *models.MaintenanceWindow) error {
	if by.IsStaff() {
		return nil
	}
	if by.Is(actor.RoleWorker) && w.WorkerID != nil && *w.WorkerID == by.UserID {
		return nil
	}
	return httperr.ErrForbidden("forbidden")
}

type step func(tx domain.Repository, w *models.MaintenanceWindow, wasStatus domain.Status, now time.Time) error

func (uc *Lifecycle) run(
	ctx context.Context,
	by actor.Actor,
	windowID uint,
	staffOnly bool,
	apply step,
) (*models.MaintenanceWindow, error) {

	var out *models.MaintenanceWindow
	now := uc.clock.Now()

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		w, err := tx.LockWindow(ctx, windowID)
		if err != nil {
			return err
		}

		if staffOnly {
			if err := actor.Require(by, actor.RoleAdmin, actor.RoleManager); err != nil {
				return err
			}
		} else if err := canOperate(by, w); err != nil {
			return err
		}

		was := domain.Status(w.Status)
		if err := apply(tx, w, was, now); err != nil {
			return err
		}

		if err := tx.UpdateWindow(ctx, w); err != nil {
			return err
		}

		out = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	if out.CabinID != nil {
		uc.cache.Invalidate(ctx, domain.Period(out))
	}

	return out, nil
}

// ======================================================
// START
// ======================================================

func (uc *Lifecycle) Start(
	ctx context.Context,
	by actor.Actor,
	windowID uint,
) (*models.MaintenanceWindow, error) {

	w, err := uc.run(ctx, by, windowID, false,
		func(tx domain.Repository, w *models.MaintenanceWindow, _ domain.Status, now time.Time) error {
			if err := domain.Start(w, now); err != nil {
				return err
			}
			if w.CabinID == nil {
				return nil
			}
			if _, err := tx.LockCabin(ctx, *w.CabinID); err != nil {
				return err
			}
			return tx.UpdateCabinStatus(ctx, *w.CabinID, cabinUnderMaintenance)
		},
	)
	if err != nil {
		return nil, err
	}

	uc.dispatch(by, "maintenance_started", w)
	return w, nil
}

// ======================================================
// COMPLETE
// ======================================================

// Complete libera o recurso: cabana volta a available (se nenhuma outra
// manutenção dela segue em andamento) e as tarefas vinculadas são
// concluídas, tudo na mesma transação.
func (uc *Lifecycle) Complete(
	ctx context.Context,
	by actor.Actor,
	windowID uint,
) (*models.MaintenanceWindow, error) {

	w, err := uc.run(ctx, by, windowID, false,
		func(tx domain.Repository, w *models.MaintenanceWindow, _ domain.Status, now time.Time) error {
			if err := domain.Complete(w, now); err != nil {
				return err
			}
			if w.CabinID != nil {
				if err := releaseCabin(ctx, tx, w); err != nil {
					return err
				}
			}
			_, err := tx.CloseTasksForWindow(ctx, w.ID, string(task.StatusCompleted), now)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	uc.dispatch(by, "maintenance_completed", w)

	uc.notifier.Notify(ctx, notify.Roles(string(actor.RoleAdmin), string(actor.RoleManager)), notify.Message{
		Title:      "Manutenção concluída",
		Body:       "A manutenção #" + itoa(w.ID) + " foi concluída e o recurso está liberado.",
		Severity:   notify.SeveritySuccess,
		Attributes: map[string]any{"maintenance_id": w.ID},
	})

	return w, nil
}

// ======================================================
// CANCEL
// ======================================================

func (uc *Lifecycle) Cancel(
	ctx context.Context,
	by actor.Actor,
	windowID uint,
) (*models.MaintenanceWindow, error) {

	w, err := uc.run(ctx, by, windowID, true,
		func(tx domain.Repository, w *models.MaintenanceWindow, was domain.Status, now time.Time) error {
			if err := domain.Cancel(w, now); err != nil {
				return err
			}
			// só a manutenção em andamento tinha mudado o status físico
			if w.CabinID != nil && was == domain.StatusInProgress {
				if err := releaseCabin(ctx, tx, w); err != nil {
					return err
				}
			}
			_, err := tx.CloseTasksForWindow(ctx, w.ID, string(task.StatusCancelled), now)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	uc.dispatch(by, "maintenance_cancelled", w)

	if w.WorkerID != nil {
		uc.notifier.Notify(ctx, notify.Users(*w.WorkerID), notify.Message{
			Title:      "Manutenção cancelada",
			Body:       "A manutenção #" + itoa(w.ID) + " foi cancelada.",
			Severity:   notify.SeverityInfo,
			Attributes: map[string]any{"maintenance_id": w.ID},
		})
	}

	return w, nil
}

// releaseCabin devolve a cabana a available, a menos que outra
// manutenção dela ainda esteja in_progress.
func releaseCabin(ctx context.Context, tx domain.Repository, w *models.MaintenanceWindow) error {
	if _, err := tx.LockCabin(ctx, *w.CabinID); err != nil {
		return err
	}

	n, err := tx.CountInProgressOnCabin(ctx, *w.CabinID, w.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	return tx.UpdateCabinStatus(ctx, *w.CabinID, cabinAvailable)
}

func (uc *Lifecycle) dispatch(by actor.Actor, action string, w *models.MaintenanceWindow) {
	uc.audit.Dispatch(audit.Event{
		UserID:   &by.UserID,
		Action:   action,
		Entity:   "maintenance_window",
		EntityID: &w.ID,
	})
}
