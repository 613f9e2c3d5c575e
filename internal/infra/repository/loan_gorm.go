package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/loan"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type LoanGormRepository struct {
	db *gorm.DB
}

func NewLoanGormRepository(db *gorm.DB) *LoanGormRepository {
	return &LoanGormRepository{db: db}
}

func (r *LoanGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LoanGormRepository{db: tx})
	})
}

func (r *LoanGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return getUser(r.db.WithContext(ctx), id)
}

// --------------------------------------------------
// Equipment
// --------------------------------------------------

func (r *LoanGormRepository) GetEquipment(
	ctx context.Context,
	id uint,
) (*models.Equipment, error) {

	var eq models.Equipment
	if err := r.db.WithContext(ctx).First(&eq, id).Error; err != nil {
		return nil, notFound(err, "equipment_not_found")
	}
	return &eq, nil
}

func (r *LoanGormRepository) LockEquipment(
	ctx context.Context,
	id uint,
) (*models.Equipment, error) {

	var eq models.Equipment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&eq, id).Error; err != nil {
		return nil, notFound(err, "equipment_not_found")
	}
	return &eq, nil
}

func (r *LoanGormRepository) UpdateEquipmentStock(
	ctx context.Context,
	eq *models.Equipment,
) error {
	// map para gravar também o zero
	return r.db.WithContext(ctx).
		Model(&models.Equipment{}).
		Where("id = ?", eq.ID).
		Updates(map[string]any{
			"available_stock": eq.AvailableStock,
			"total_stock":     eq.TotalStock,
		}).Error
}

// --------------------------------------------------
// Loan
// --------------------------------------------------

func (r *LoanGormRepository) CreateLoan(
	ctx context.Context,
	l *models.EquipmentLoan,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error
}

func (r *LoanGormRepository) GetLoan(
	ctx context.Context,
	id uint,
) (*models.EquipmentLoan, error) {

	var l models.EquipmentLoan
	if err := r.db.WithContext(ctx).
		Preload("Equipment").
		Preload("Client").
		First(&l, id).Error; err != nil {
		return nil, notFound(err, "loan_not_found")
	}
	return &l, nil
}

func (r *LoanGormRepository) LockLoan(
	ctx context.Context,
	id uint,
) (*models.EquipmentLoan, error) {

	var l models.EquipmentLoan
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, id).Error; err != nil {
		return nil, notFound(err, "loan_not_found")
	}
	return &l, nil
}

func (r *LoanGormRepository) UpdateLoan(
	ctx context.Context,
	l *models.EquipmentLoan,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error
}

func (r *LoanGormRepository) ListLoans(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.EquipmentLoan, error) {

	q := r.db.WithContext(ctx).
		Preload("Equipment").
		Preload("Client")

	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.EquipmentID != nil {
		q = q.Where("equipment_id = ?", *f.EquipmentID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}

	var list []models.EquipmentLoan
	if err := q.Order("loaned_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *LoanGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Compile-time check
var _ domain.Repository = (*LoanGormRepository)(nil)
