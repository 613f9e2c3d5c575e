package reservation

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type ListReservations struct {
	repo      domain.Repository
	completer *CompletePastReservations
}

func NewListReservations(
	repo domain.Repository,
	completer *CompletePastReservations,
) *ListReservations {
	return &ListReservations{
		repo:      repo,
		completer: completer,
	}
}

// Execute: cliente só enxerga as próprias reservas; staff filtra à vontade.
func (uc *ListReservations) Execute(
	ctx context.Context,
	by actor.Actor,
	f domain.ListFilter,
) ([]models.Reservation, error) {

	switch {
	case by.Is(actor.RoleClient):
		f.ClientID = &by.UserID
	case by.IsStaff():
	default:
		return nil, httperr.ErrForbidden("forbidden")
	}

	uc.completer.BeforeRead(ctx)

	return uc.repo.ListReservations(ctx, f)
}

type GetReservation struct {
	repo      domain.Repository
	completer *CompletePastReservations
}

func NewGetReservation(
	repo domain.Repository,
	completer *CompletePastReservations,
) *GetReservation {
	return &GetReservation{
		repo:      repo,
		completer: completer,
	}
}

func (uc *GetReservation) Execute(
	ctx context.Context,
	by actor.Actor,
	reservationID uint,
) (*models.Reservation, error) {

	uc.completer.BeforeRead(ctx)

	r, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if !by.IsStaff() && !by.Owns(r.ClientID) {
		// não revela a existência da reserva
		return nil, httperr.ErrNotFound("reservation_not_found")
	}

	return r, nil
}
