package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/task"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type TaskGormRepository struct {
	db *gorm.DB
}

func NewTaskGormRepository(db *gorm.DB) *TaskGormRepository {
	return &TaskGormRepository{db: db}
}

func (r *TaskGormRepository) GetTask(ctx context.Context, id uint) (*models.WorkerTask, error) {
	var t models.WorkerTask
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, notFound(err, "task_not_found")
	}
	return &t, nil
}

func (r *TaskGormRepository) UpdateTask(ctx context.Context, t *models.WorkerTask) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(t).Error
}

func (r *TaskGormRepository) ListByWorker(
	ctx context.Context,
	workerID uint,
	status *domain.Status,
) ([]models.WorkerTask, error) {

	q := r.db.WithContext(ctx).Where("worker_id = ?", workerID)
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var list []models.WorkerTask
	if err := q.Order("due_date ASC NULLS LAST, id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

var _ domain.Repository = (*TaskGormRepository)(nil)
