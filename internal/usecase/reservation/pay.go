package reservation

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/payment"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

type PayReservation struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    *audit.Dispatcher
	clock    timezone.Clock
}

func NewPayReservation(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *PayReservation {
	return &PayReservation{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		clock:    clock,
	}
}

// Execute registra o pagamento da reserva pelo valor cotado e marca a
// confirmação do cliente. Só vale para reservas confirmed; repetir a
// chamada devolve o pagamento já liquidado sem gravar nem notificar.
func (uc *PayReservation) Execute(
	ctx context.Context,
	by actor.Actor,
	reservationID uint,
	rawMethod string,
) (*models.Payment, error) {

	if err := actor.Require(by, actor.RoleAdmin, actor.RoleManager, actor.RoleClient); err != nil {
		return nil, err
	}

	method, err := payment.ParseMethod(rawMethod)
	if err != nil {
		return nil, err
	}

	var (
		paid     *models.Payment
		res      *models.Reservation
		replayed bool
	)

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		r, err := tx.LockReservation(ctx, reservationID)
		if err != nil {
			return err
		}

		if !by.IsStaff() && !by.Owns(r.ClientID) {
			return httperr.ErrForbidden("forbidden")
		}

		if domain.Status(r.Status) != domain.StatusConfirmed {
			return httperr.ErrConflict("invalid_state", map[string]any{
				"current_status": r.Status,
			})
		}

		existing, err := tx.FindReservationPayment(ctx, r.ID)
		if err != nil {
			return err
		}

		if payment.IsSettled(existing) && r.ClientConfirmed {
			paid = existing
			replayed = true
			return nil
		}

		p := payment.SettleReservation(existing, r.ID, r.QuotedAmount, method, uc.clock.Now())
		if err := payment.Validate(p); err != nil {
			return err
		}
		if err := tx.SavePayment(ctx, p); err != nil {
			return err
		}

		r.ClientConfirmed = true
		if err := tx.UpdateReservation(ctx, r); err != nil {
			return err
		}

		paid = p
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	if replayed {
		return paid, nil
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &by.UserID,
		Action:   "reservation_paid",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{
			"payment_id": paid.ID,
			"amount":     paid.Amount.StringFixed(2),
			"method":     paid.Method,
		},
	})

	uc.notifier.Notify(ctx,
		staffRoles(actor.RoleAdmin, actor.RoleManager),
		paidStaffMessage(res, paid),
	)
	uc.notifier.Notify(ctx,
		notify.Users(res.ClientID),
		paidClientMessage(res, paid),
	)

	return paid, nil
}
