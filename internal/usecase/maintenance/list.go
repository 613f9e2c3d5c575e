package maintenance

import (
	"context"
	"strconv"

	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/maintenance"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type ListMaintenance struct {
	repo domain.Repository
}

func NewListMaintenance(repo domain.Repository) *ListMaintenance {
	return &ListMaintenance{repo: repo}
}

// Execute: trabalhador vê só as manutenções designadas a ele.
func (uc *ListMaintenance) Execute(
	ctx context.Context,
	by actor.Actor,
	f domain.ListFilter,
) ([]models.MaintenanceWindow, error) {

	switch {
	case by.IsStaff():
	case by.Is(actor.RoleWorker):
		f.WorkerID = &by.UserID
	default:
		return nil, httperr.ErrForbidden("forbidden")
	}

	return uc.repo.ListWindows(ctx, f)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
