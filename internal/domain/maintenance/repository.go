package maintenance

import (
	"context"
	"time"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type ListFilter struct {
	CabinID     *uint
	EquipmentID *uint
	WorkerID    *uint
	Status      *Status
}

type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	GetCabin(ctx context.Context, id uint) (*models.Cabin, error)
	// LockCabin serializa as mudanças de status físico da cabana.
	LockCabin(ctx context.Context, id uint) (*models.Cabin, error)
	UpdateCabinStatus(ctx context.Context, cabinID uint, status string) error
	GetEquipment(ctx context.Context, id uint) (*models.Equipment, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)

	// -------- Window --------
	CreateWindow(ctx context.Context, w *models.MaintenanceWindow) error
	GetWindow(ctx context.Context, id uint) (*models.MaintenanceWindow, error)
	LockWindow(ctx context.Context, id uint) (*models.MaintenanceWindow, error)
	UpdateWindow(ctx context.Context, w *models.MaintenanceWindow) error
	ListWindows(ctx context.Context, f ListFilter) ([]models.MaintenanceWindow, error)
	// manutenções in_progress da cabana, fora a informada
	CountInProgressOnCabin(ctx context.Context, cabinID uint, exceptWindowID uint) (int64, error)

	// -------- Worker tasks --------
	CreateTask(ctx context.Context, t *models.WorkerTask) error
	// fecha as tarefas ainda abertas da manutenção
	CloseTasksForWindow(ctx context.Context, windowID uint, status string, now time.Time) (int64, error)

	// -------- Affected reservations --------
	ListActiveReservationsOverlapping(ctx context.Context, cabinID uint, r dates.Range) ([]models.Reservation, error)
}
