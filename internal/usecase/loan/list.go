package loan

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/loan"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type ListLoans struct {
	repo domain.Repository
}

func NewListLoans(repo domain.Repository) *ListLoans {
	return &ListLoans{repo: repo}
}

func (uc *ListLoans) Execute(
	ctx context.Context,
	by actor.Actor,
	f domain.ListFilter,
) ([]models.EquipmentLoan, error) {

	switch {
	case by.Is(actor.RoleClient):
		f.ClientID = &by.UserID
	case by.Is(actor.RoleAdmin, actor.RoleManager, actor.RoleWorker):
	default:
		return nil, httperr.ErrForbidden("forbidden")
	}

	return uc.repo.ListLoans(ctx, f)
}
