package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

func (r *AvailabilityGormRepository) ListBlockingIntervals(
	ctx context.Context,
	ref domain.ResourceRef,
	window dates.Range,
) ([]domain.Interval, error) {
	return listBlockingIntervals(r.db.WithContext(ctx), ref, window)
}

func (r *AvailabilityGormRepository) ListCabins(ctx context.Context) ([]domain.CabinInfo, error) {
	var cabins []models.Cabin
	if err := r.db.WithContext(ctx).
		Select("id", "name").
		Order("id ASC").
		Find(&cabins).Error; err != nil {
		return nil, err
	}

	out := make([]domain.CabinInfo, 0, len(cabins))
	for _, c := range cabins {
		out = append(out, domain.CabinInfo{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (r *AvailabilityGormRepository) ListCabinIntervals(
	ctx context.Context,
	window dates.Range,
) ([]domain.Interval, error) {

	logger.DatabaseCall("ListCabinIntervals")

	db := r.db.WithContext(ctx)

	res, err := blockingReservations(db, nil, window)
	if err != nil {
		return nil, err
	}

	mws, err := blockingMaintenance(db, nil, window)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Interval, 0, len(res)+len(mws))
	for _, row := range res {
		out = append(out, row.toInterval(domain.Cabin(*row.CabinID), domain.ReasonReserved))
	}
	for _, row := range mws {
		out = append(out, row.toInterval(domain.Cabin(*row.CabinID), domain.ReasonMaintenance))
	}

	logger.DatabaseResult("ListCabinIntervals", int64(len(out)), nil,
		"from", dates.Format(window.Start),
		"to", dates.Format(window.End),
	)

	return out, nil
}

// Compile-time check
var _ domain.Repository = (*AvailabilityGormRepository)(nil)
