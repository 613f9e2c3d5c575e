package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
)

func getUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &user, nil
}

// UserGormRepository resolve papéis em destinatários de notificação.
type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return getUser(r.db.WithContext(ctx), id)
}

func (r *UserGormRepository) UserIDsByRole(
	ctx context.Context,
	roles ...string,
) ([]uint, error) {

	if len(roles) == 0 {
		return nil, nil
	}

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role IN ?", roles).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

var _ notify.Directory = (*UserGormRepository)(nil)
