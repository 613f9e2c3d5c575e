package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	Actor actor.Actor

	// vazio quando o próprio cliente reserva
	ClientID uint
	CabinID  uint

	StartDate string
	EndDate   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    *audit.Dispatcher
	cache    availability.CalendarCache
	clock    timezone.Clock
	leadDays int
}

func NewCreateReservation(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
	cache availability.CalendarCache,
	clock timezone.Clock,
	leadDays int,
) *CreateReservation {
	if leadDays <= 0 {
		leadDays = domain.DefaultLeadDays
	}
	return &CreateReservation{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		cache:    cache,
		clock:    clock,
		leadDays: leadDays,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	logger.EnterMethod("reservation.Create", "cabin_id", in.CabinID)

	// --------------------------------------------------
	// 1️⃣ Quem reserva para quem
	// --------------------------------------------------
	clientID, err := resolveClient(in.Actor, in.ClientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Datas (YYYY-MM-DD, início < fim)
	// --------------------------------------------------
	period, err := dates.ParseRange(in.StartDate, in.EndDate)
	if err != nil {
		if errors.Is(err, dates.ErrInvalidRange) {
			return nil, httperr.ErrBusiness("invalid_date_range")
		}
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// 3️⃣ Antecedência mínima
	// --------------------------------------------------
	if err := domain.CheckLeadTime(period.Start, uc.clock.Now(), uc.leadDays); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Verificação + inserção sob lock da cabana
	// --------------------------------------------------
	var created *models.Reservation

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		cabin, err := tx.LockCabin(ctx, in.CabinID)
		if err != nil {
			return err
		}

		client, err := tx.GetUser(ctx, clientID)
		if err != nil && !httperr.IsNotFound(err) {
			return err
		}
		if err != nil || actor.Role(client.Role) != actor.RoleClient {
			return httperr.ErrNotFound("client_not_found")
		}

		conflict, err := availability.NewChecker(tx).Check(ctx, availability.Cabin(cabin.ID), period)
		if err != nil {
			// fail closed
			return fmt.Errorf("availability check: %w", err)
		}
		if conflict != nil {
			return httperr.ErrBusinessWith("cabin_not_available", map[string]any{
				"reason": string(conflict.Reason),
			})
		}

		r := &models.Reservation{
			ClientID:     clientID,
			CabinID:      cabin.ID,
			StartDate:    period.Start,
			EndDate:      period.End,
			Status:       string(domain.InitialStatus()),
			QuotedAmount: domain.Quote(period, cabin.NightlyPrice),
		}

		if err := tx.CreateReservation(ctx, r); err != nil {
			if httperr.IsExclusionConflict(err) {
				return httperr.ErrBusinessWith("cabin_not_available", map[string]any{
					"reason": string(availability.ReasonReserved),
				})
			}
			return err
		}

		r.Cabin = *cabin
		r.Client = *client
		created = r
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("reservation.Create", err, "cabin_id", in.CabinID)
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Efeitos colaterais (fora da transação)
	// --------------------------------------------------
	uc.cache.Invalidate(ctx, period)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.UserID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &created.ID,
		Metadata: map[string]any{
			"cabin_id":   created.CabinID,
			"start_date": dates.Format(period.Start),
			"end_date":   dates.Format(period.End),
		},
	})

	uc.notifier.Notify(ctx,
		notify.Users(created.ClientID).And(staffRoles(actor.RoleAdmin, actor.RoleManager)),
		createdMessage(created),
	)

	logger.ExitMethod("reservation.Create", "reservation_id", created.ID)
	return created, nil
}

// cliente reserva para si; staff precisa informar o cliente
func resolveClient(a actor.Actor, clientID uint) (uint, error) {
	switch {
	case a.Is(actor.RoleClient):
		if clientID != 0 && clientID != a.UserID {
			return 0, httperr.ErrForbidden("forbidden")
		}
		return a.UserID, nil
	case a.IsStaff():
		if clientID == 0 {
			return 0, httperr.ErrBusiness("client_not_found")
		}
		return clientID, nil
	}
	return 0, httperr.ErrForbidden("forbidden")
}
