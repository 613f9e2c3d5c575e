package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/maintenance"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/task"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type MaintenanceGormRepository struct {
	db *gorm.DB
}

func NewMaintenanceGormRepository(db *gorm.DB) *MaintenanceGormRepository {
	return &MaintenanceGormRepository{db: db}
}

func (r *MaintenanceGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&MaintenanceGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Resources
// --------------------------------------------------

func (r *MaintenanceGormRepository) GetCabin(ctx context.Context, id uint) (*models.Cabin, error) {
	var cabin models.Cabin
	if err := r.db.WithContext(ctx).First(&cabin, id).Error; err != nil {
		return nil, notFound(err, "cabin_not_found")
	}
	return &cabin, nil
}

func (r *MaintenanceGormRepository) LockCabin(ctx context.Context, id uint) (*models.Cabin, error) {
	var cabin models.Cabin
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&cabin, id).Error; err != nil {
		return nil, notFound(err, "cabin_not_found")
	}
	return &cabin, nil
}

func (r *MaintenanceGormRepository) UpdateCabinStatus(
	ctx context.Context,
	cabinID uint,
	status string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Cabin{}).
		Where("id = ?", cabinID).
		Update("status", status).Error
}

func (r *MaintenanceGormRepository) GetEquipment(ctx context.Context, id uint) (*models.Equipment, error) {
	var eq models.Equipment
	if err := r.db.WithContext(ctx).First(&eq, id).Error; err != nil {
		return nil, notFound(err, "equipment_not_found")
	}
	return &eq, nil
}

func (r *MaintenanceGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return getUser(r.db.WithContext(ctx), id)
}

// --------------------------------------------------
// Window
// --------------------------------------------------

func (r *MaintenanceGormRepository) CreateWindow(
	ctx context.Context,
	w *models.MaintenanceWindow,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(w).Error
}

func (r *MaintenanceGormRepository) GetWindow(
	ctx context.Context,
	id uint,
) (*models.MaintenanceWindow, error) {

	var w models.MaintenanceWindow
	if err := r.db.WithContext(ctx).
		Preload("Cabin").
		Preload("Equipment").
		Preload("Worker").
		First(&w, id).Error; err != nil {
		return nil, notFound(err, "maintenance_not_found")
	}
	return &w, nil
}

func (r *MaintenanceGormRepository) LockWindow(
	ctx context.Context,
	id uint,
) (*models.MaintenanceWindow, error) {

	var w models.MaintenanceWindow
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&w, id).Error; err != nil {
		return nil, notFound(err, "maintenance_not_found")
	}
	return &w, nil
}

func (r *MaintenanceGormRepository) UpdateWindow(
	ctx context.Context,
	w *models.MaintenanceWindow,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(w).Error
}

func (r *MaintenanceGormRepository) ListWindows(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.MaintenanceWindow, error) {

	q := r.db.WithContext(ctx).
		Preload("Cabin").
		Preload("Equipment").
		Preload("Worker")

	if f.CabinID != nil {
		q = q.Where("cabin_id = ?", *f.CabinID)
	}
	if f.EquipmentID != nil {
		q = q.Where("equipment_id = ?", *f.EquipmentID)
	}
	if f.WorkerID != nil {
		q = q.Where("worker_id = ?", *f.WorkerID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}

	var list []models.MaintenanceWindow
	if err := q.Order("start_date ASC, id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// --------------------------------------------------
// Worker tasks
// --------------------------------------------------

func (r *MaintenanceGormRepository) CountInProgressOnCabin(
	ctx context.Context,
	cabinID uint,
	exceptWindowID uint,
) (int64, error) {

	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.MaintenanceWindow{}).
		Where("cabin_id = ? AND status = ? AND id <> ?",
			cabinID, string(domain.StatusInProgress), exceptWindowID).
		Count(&n).Error
	return n, err
}

func (r *MaintenanceGormRepository) CreateTask(
	ctx context.Context,
	t *models.WorkerTask,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(t).Error
}

func (r *MaintenanceGormRepository) CloseTasksForWindow(
	ctx context.Context,
	windowID uint,
	status string,
	now time.Time,
) (int64, error) {

	fields := map[string]any{
		"status":     status,
		"updated_at": now,
	}
	if status == string(task.StatusCompleted) {
		fields["completed_at"] = now
	}

	res := r.db.WithContext(ctx).
		Model(&models.WorkerTask{}).
		Where("maintenance_window_id = ? AND status IN ?", windowID, task.OpenStatuses()).
		Updates(fields)

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Affected reservations
// --------------------------------------------------

func (r *MaintenanceGormRepository) ListActiveReservationsOverlapping(
	ctx context.Context,
	cabinID uint,
	period dates.Range,
) ([]models.Reservation, error) {

	var list []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Cabin").
		Where(
			"cabin_id = ? AND status IN ? AND start_date < ? AND end_date > ?",
			cabinID,
			reservation.BlockingStatuses(),
			dates.Format(period.End),
			dates.Format(period.Start),
		).
		Order("start_date ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Compile-time check
var _ domain.Repository = (*MaintenanceGormRepository)(nil)
