package loan

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type ListFilter struct {
	ClientID    *uint
	EquipmentID *uint
	Status      *Status
}

type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	GetUser(ctx context.Context, id uint) (*models.User, error)

	// -------- Equipment --------
	GetEquipment(ctx context.Context, id uint) (*models.Equipment, error)
	LockEquipment(ctx context.Context, id uint) (*models.Equipment, error)
	UpdateEquipmentStock(ctx context.Context, eq *models.Equipment) error

	// -------- Loan --------
	CreateLoan(ctx context.Context, l *models.EquipmentLoan) error
	GetLoan(ctx context.Context, id uint) (*models.EquipmentLoan, error)
	LockLoan(ctx context.Context, id uint) (*models.EquipmentLoan, error)
	UpdateLoan(ctx context.Context, l *models.EquipmentLoan) error
	ListLoans(ctx context.Context, f ListFilter) ([]models.EquipmentLoan, error)

	// -------- Payment --------
	CreatePayment(ctx context.Context, p *models.Payment) error
}
