package reservation

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/preparation"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

type ConfirmReservation struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    *audit.Dispatcher
	clock    timezone.Clock
}

func NewConfirmReservation(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *ConfirmReservation {
	return &ConfirmReservation{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		clock:    clock,
	}
}

// Execute confirma e abre o checklist de preparação. O status físico da
// cabana não é tocado.
func (uc *ConfirmReservation) Execute(
	ctx context.Context,
	by actor.Actor,
	reservationID uint,
) (*models.Reservation, error) {

	if err := actor.Require(by, actor.RoleAdmin); err != nil {
		return nil, err
	}

	var confirmed *models.Reservation

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		r, err := tx.LockReservation(ctx, reservationID)
		if err != nil {
			return err
		}

		if err := domain.Confirm(r, uc.clock.Now()); err != nil {
			return err
		}

		if err := tx.UpdateReservation(ctx, r); err != nil {
			return err
		}

		if err := tx.CreatePreparation(ctx, preparation.New(r.ID)); err != nil {
			return err
		}

		confirmed = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &by.UserID,
		Action:   "reservation_confirmed",
		Entity:   "reservation",
		EntityID: &confirmed.ID,
	})

	uc.notifier.Notify(ctx,
		notify.Users(confirmed.ClientID).And(staffRoles(actor.RoleManager)),
		confirmedMessage(confirmed),
	)

	return confirmed, nil
}
