package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/preparation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type PreparationGormRepository struct {
	db *gorm.DB
}

func NewPreparationGormRepository(db *gorm.DB) *PreparationGormRepository {
	return &PreparationGormRepository{db: db}
}

func (r *PreparationGormRepository) GetByReservation(
	ctx context.Context,
	reservationID uint,
) (*models.Preparation, error) {

	var p models.Preparation
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("reservation_id = ?", reservationID).
		First(&p).Error; err != nil {
		return nil, notFound(err, "preparation_not_found")
	}
	return &p, nil
}

// Save grava o item marcado e o cabeçalho na mesma transação.
func (r *PreparationGormRepository) Save(
	ctx context.Context,
	p *models.Preparation,
	item *models.PreparationItem,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if item != nil {
			if err := tx.Save(item).Error; err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(p).Error
	})
}

var _ domain.Repository = (*PreparationGormRepository)(nil)
