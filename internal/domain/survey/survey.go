package survey

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Eligible: só depois da estadia (reserva concluída).
func Eligible(r *models.Reservation) error {
	if reservation.Status(r.Status) != reservation.StatusCompleted {
		return httperr.ErrConflict("survey_not_allowed", map[string]any{
			"current_status": r.Status,
		})
	}
	return nil
}

func ValidateRatings(s *models.Survey) error {
	if !inRange(s.General) {
		return httperr.ErrBusiness("invalid_rating")
	}
	for _, opt := range []*int{s.Cleanliness, s.Service, s.Value} {
		if opt != nil && !inRange(*opt) {
			return httperr.ErrBusiness("invalid_rating")
		}
	}
	return nil
}

func inRange(v int) bool {
	return v >= MinRating && v <= MaxRating
}

type Repository interface {
	ExistsForReservation(ctx context.Context, reservationID uint) (bool, error)
	Create(ctx context.Context, s *models.Survey) error
}
