package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/survey"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

type SurveyGormRepository struct {
	db *gorm.DB
}

func NewSurveyGormRepository(db *gorm.DB) *SurveyGormRepository {
	return &SurveyGormRepository{db: db}
}

func (r *SurveyGormRepository) ExistsForReservation(
	ctx context.Context,
	reservationID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Survey{}).
		Where("reservation_id = ?", reservationID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SurveyGormRepository) Create(ctx context.Context, s *models.Survey) error {
	err := r.db.WithContext(ctx).Create(s).Error
	// corrida entre dois envios: o uniqueIndex decide
	if err != nil && isUniqueViolation(err) {
		return httperr.ErrConflict("survey_already_sent", nil)
	}
	return err
}

var _ domain.Repository = (*SurveyGormRepository)(nil)
