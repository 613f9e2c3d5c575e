package survey

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/survey"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
)

type SubmitSurveyInput struct {
	Actor         actor.Actor
	ReservationID uint

	General     int
	Cleanliness *int
	Service     *int
	Value       *int

	Comments       string
	WouldRecommend bool
}

type PastCompleter interface {
	BeforeRead(ctx context.Context)
}

type SubmitSurvey struct {
	reservations reservation.Repository
	surveys      domain.Repository
	completer    PastCompleter
	notifier     notify.Notifier
	audit        *audit.Dispatcher
}

func NewSubmitSurvey(
	reservations reservation.Repository,
	surveys domain.Repository,
	completer PastCompleter,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
) *SubmitSurvey {
	return &SubmitSurvey{
		reservations: reservations,
		surveys:      surveys,
		completer:    completer,
		notifier:     notifier,
		audit:        audit,
	}
}

func (uc *SubmitSurvey) Execute(
	ctx context.Context,
	in SubmitSurveyInput,
) (*models.Survey, error) {

	if err := actor.Require(in.Actor, actor.RoleClient); err != nil {
		return nil, err
	}

	s := &models.Survey{
		ReservationID:  in.ReservationID,
		ClientID:       in.Actor.UserID,
		General:        in.General,
		Cleanliness:    in.Cleanliness,
		Service:        in.Service,
		Value:          in.Value,
		Comments:       in.Comments,
		WouldRecommend: in.WouldRecommend,
	}
	if err := domain.ValidateRatings(s); err != nil {
		return nil, err
	}

	// estado precisa estar em dia antes da elegibilidade
	uc.completer.BeforeRead(ctx)

	r, err := uc.reservations.GetReservation(ctx, in.ReservationID)
	if err != nil {
		return nil, err
	}
	if !in.Actor.Owns(r.ClientID) {
		return nil, httperr.ErrNotFound("reservation_not_found")
	}

	if err := domain.Eligible(r); err != nil {
		return nil, err
	}

	exists, err := uc.surveys.ExistsForReservation(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrConflict("survey_already_sent", nil)
	}

	if err := uc.surveys.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.UserID,
		Action:   "survey_submitted",
		Entity:   "survey",
		EntityID: &s.ID,
	})

	uc.notifier.Notify(ctx, notify.Roles(string(actor.RoleAdmin)), notify.Message{
		Title:    "Nova pesquisa de satisfação",
		Body:     "Um cliente avaliou a estadia.",
		Severity: notify.SeverityInfo,
		Attributes: map[string]any{
			"reservation_id": r.ID,
			"general":        s.General,
		},
	})

	return s, nil
}
