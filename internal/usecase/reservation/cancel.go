package reservation

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

type CancelReservation struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    *audit.Dispatcher
	cache    availability.CalendarCache
	clock    timezone.Clock
}

func NewCancelReservation(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
	cache availability.CalendarCache,
	clock timezone.Clock,
) *CancelReservation {
	return &CancelReservation{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		cache:    cache,
		clock:    clock,
	}
}

// Execute: dono da reserva ou admin. Só a reserva muda; o intervalo deixa
// de contar nas verificações de sobreposição.
func (uc *CancelReservation) Execute(
	ctx context.Context,
	by actor.Actor,
	reservationID uint,
) (*models.Reservation, error) {

	var cancelled, completed *models.Reservation
	now := uc.clock.Now()

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		r, err := tx.LockReservation(ctx, reservationID)
		if err != nil {
			return err
		}

		// estadia já encerrada: conclui em vez de cancelar
		if domain.IsPastDue(r, now) {
			if !by.Is(actor.RoleAdmin) && !by.Owns(r.ClientID) {
				return httperr.ErrForbidden("forbidden")
			}
			if err := domain.Complete(r, now); err != nil {
				return err
			}
			if err := tx.UpdateReservation(ctx, r); err != nil {
				return err
			}
			completed = r
			return nil
		}

		if err := domain.Cancel(r, by, now); err != nil {
			return err
		}

		if err := tx.UpdateReservation(ctx, r); err != nil {
			return err
		}

		cancelled = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	if completed != nil {
		uc.cache.Invalidate(ctx, domain.Period(completed))
		return nil, domain.CanCancel(domain.StatusCompleted)
	}

	uc.cache.Invalidate(ctx, domain.Period(cancelled))

	uc.audit.Dispatch(audit.Event{
		UserID:   &by.UserID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &cancelled.ID,
		Metadata: map[string]any{"role": string(by.Role)},
	})

	uc.notifier.Notify(ctx,
		notify.Users(cancelled.ClientID).And(staffRoles(actor.RoleAdmin)),
		cancelledMessage(cancelled),
	)

	return cancelled, nil
}
