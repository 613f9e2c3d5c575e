package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func (r *ReservationGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ReservationGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Cabin / User
// --------------------------------------------------

func (r *ReservationGormRepository) GetCabin(
	ctx context.Context,
	id uint,
) (*models.Cabin, error) {

	var cabin models.Cabin
	if err := r.db.WithContext(ctx).First(&cabin, id).Error; err != nil {
		return nil, notFound(err, "cabin_not_found")
	}
	return &cabin, nil
}

func (r *ReservationGormRepository) LockCabin(
	ctx context.Context,
	id uint,
) (*models.Cabin, error) {

	var cabin models.Cabin
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&cabin, id).Error; err != nil {
		return nil, notFound(err, "cabin_not_found")
	}
	return &cabin, nil
}

func (r *ReservationGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {
	return getUser(r.db.WithContext(ctx), id)
}

// --------------------------------------------------
// Overlap
// --------------------------------------------------

func (r *ReservationGormRepository) ListBlockingIntervals(
	ctx context.Context,
	ref availability.ResourceRef,
	window dates.Range,
) ([]availability.Interval, error) {
	return listBlockingIntervals(r.db.WithContext(ctx), ref, window)
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(res).Error
}

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Cabin").
		Preload("Client").
		First(&res, id).Error; err != nil {
		return nil, notFound(err, "reservation_not_found")
	}
	return &res, nil
}

func (r *ReservationGormRepository) LockReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&res, id).Error; err != nil {
		return nil, notFound(err, "reservation_not_found")
	}
	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(res).Error
}

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).
		Preload("Cabin").
		Preload("Client")

	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.CabinID != nil {
		q = q.Where("cabin_id = ?", *f.CabinID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}
	if f.Window != nil {
		q = q.Where(
			"start_date < ? AND end_date > ?",
			dates.Format(f.Window.End),
			dates.Format(f.Window.Start),
		)
	}

	var list []models.Reservation
	if err := q.Order("start_date ASC, id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ReservationGormRepository) CompletePastConfirmed(
	ctx context.Context,
	today time.Time,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("status = ? AND end_date < ?", string(domain.StatusConfirmed), dates.Format(today)).
		Updates(map[string]any{
			"status":       string(domain.StatusCompleted),
			"completed_at": now,
			"updated_at":   now,
		})

	return res.RowsAffected, res.Error
}

func (r *ReservationGormRepository) ListPendingStartingOn(
	ctx context.Context,
	day time.Time,
) ([]models.Reservation, error) {

	var list []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Cabin").
		Preload("Client").
		Where("status = ? AND start_date = ?", string(domain.StatusPending), dates.Format(day)).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *ReservationGormRepository) FindReservationPayment(
	ctx context.Context,
	reservationID uint,
) (*models.Payment, error) {

	var p models.Payment
	err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Order("id ASC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SavePayment insere (ID zero) ou atualiza.
func (r *ReservationGormRepository) SavePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// --------------------------------------------------
// Preparation
// --------------------------------------------------

func (r *ReservationGormRepository) CreatePreparation(
	ctx context.Context,
	p *models.Preparation,
) error {
	// Items vão junto (has-many)
	return r.db.WithContext(ctx).Create(p).Error
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
