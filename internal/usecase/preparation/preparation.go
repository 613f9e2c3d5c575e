package preparation

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/preparation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

var operators = []actor.Role{actor.RoleAdmin, actor.RoleManager, actor.RoleWorker}

type ReservationReader interface {
	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)
}

type PastCompleter interface {
	BeforeRead(ctx context.Context)
}

type GetPreparation struct {
	repo      domain.Repository
	completer PastCompleter
}

func NewGetPreparation(repo domain.Repository, completer PastCompleter) *GetPreparation {
	return &GetPreparation{repo: repo, completer: completer}
}

func (uc *GetPreparation) Execute(
	ctx context.Context,
	by actor.Actor,
	reservationID uint,
) (*models.Preparation, error) {

	if err := actor.Require(by, operators...); err != nil {
		return nil, err
	}

	uc.completer.BeforeRead(ctx)

	return uc.repo.GetByReservation(ctx, reservationID)
}

type CompleteItem struct {
	repo         domain.Repository
	reservations ReservationReader
	completer    PastCompleter
	notifier     notify.Notifier
	audit        *audit.Dispatcher
	clock        timezone.Clock
}

func NewCompleteItem(
	repo domain.Repository,
	reservations ReservationReader,
	completer PastCompleter,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *CompleteItem {
	return &CompleteItem{
		repo:         repo,
		reservations: reservations,
		completer:    completer,
		notifier:     notifier,
		audit:        audit,
		clock:        clock,
	}
}

func (uc *CompleteItem) Execute(
	ctx context.Context,
	by actor.Actor,
	reservationID uint,
	itemID uint,
) (*models.Preparation, error) {

	if err := actor.Require(by, operators...); err != nil {
		return nil, err
	}

	uc.completer.BeforeRead(ctx)

	// checklist só anda enquanto a estadia está confirmada e por vir
	r, err := uc.reservations.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if st := reservation.Status(r.Status); st != reservation.StatusConfirmed {
		return nil, httperr.ErrConflict("invalid_state", map[string]any{
			"current_status": string(st),
		})
	}

	p, err := uc.repo.GetByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	wasReady := domain.Status(p.Status) == domain.StatusReady

	item, err := domain.CompleteItem(p, itemID, by.UserID, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, p, item); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &by.UserID,
		Action:   "preparation_item_done",
		Entity:   "preparation",
		EntityID: &p.ID,
		Metadata: map[string]any{"item_id": item.ID, "item": item.Name},
	})

	if !wasReady && domain.Status(p.Status) == domain.StatusReady {
		uc.notifier.Notify(ctx, notify.Roles(string(actor.RoleAdmin), string(actor.RoleManager)), notify.Message{
			Title:      "Cabana pronta",
			Body:       "O checklist de preparação da reserva foi concluído.",
			Severity:   notify.SeveritySuccess,
			Attributes: map[string]any{"reservation_id": reservationID},
		})
	}

	return p, nil
}
