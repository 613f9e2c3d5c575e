package survey

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
)

// só GetReservation é usado; o resto da interface fica nil
type reservationsStub struct {
	reservation.Repository
	byID map[uint]*models.Reservation
}

func (s *reservationsStub) GetReservation(_ context.Context, id uint) (*models.Reservation, error) {
	r, ok := s.byID[id]
	if !ok {
		return nil, httperr.ErrNotFound("reservation_not_found")
	}
	cp := *r
	return &cp, nil
}

type surveysStub struct {
	created []*models.Survey
}

func (s *surveysStub) ExistsForReservation(_ context.Context, id uint) (bool, error) {
	for _, sv := range s.created {
		if sv.ReservationID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *surveysStub) Create(_ context.Context, sv *models.Survey) error {
	sv.ID = uint(len(s.created) + 1)
	s.created = append(s.created, sv)
	return nil
}

// completer promove a reserva 2 (vencida) na primeira leitura
type completerStub struct {
	res *reservationsStub
}

func (c completerStub) BeforeRead(context.Context) {
	if r, ok := c.res.byID[2]; ok && r.Status == "confirmed" {
		r.Status = "completed"
	}
}

var (
	owner = actor.Actor{UserID: 10, Role: actor.RoleClient}
	other = actor.Actor{UserID: 11, Role: actor.RoleClient}
)

func newSubmit() (*SubmitSurvey, *surveysStub) {
	res := &reservationsStub{byID: map[uint]*models.Reservation{
		1: {ID: 1, ClientID: 10, Status: "completed"},
		2: {ID: 2, ClientID: 10, Status: "confirmed"},
		3: {ID: 3, ClientID: 10, Status: "pending"},
	}}
	surveys := &surveysStub{}

	uc := NewSubmitSurvey(res, surveys, completerStub{res: res}, notify.Discard{}, audit.NewDispatcher(audit.Discard))
	return uc, surveys
}

func TestSubmit_OnceForCompletedReservation(t *testing.T) {
	uc, surveys := newSubmit()
	ctx := context.Background()

	s, err := uc.Execute(ctx, SubmitSurveyInput{Actor: owner, ReservationID: 1, General: 5, WouldRecommend: true})
	require.NoError(t, err)
	assert.Equal(t, uint(10), s.ClientID)
	require.Len(t, surveys.created, 1)

	_, err = uc.Execute(ctx, SubmitSurveyInput{Actor: owner, ReservationID: 1, General: 4})
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, "survey_already_sent", be.Code)
	assert.Equal(t, httperr.KindConflict, be.Kind)
}

func TestSubmit_AutoCompletesBeforeEligibility(t *testing.T) {
	uc, _ := newSubmit()

	_, err := uc.Execute(context.Background(), SubmitSurveyInput{Actor: owner, ReservationID: 2, General: 3})
	assert.NoError(t, err)
}

func TestSubmit_Rejections(t *testing.T) {
	uc, surveys := newSubmit()
	ctx := context.Background()

	_, err := uc.Execute(ctx, SubmitSurveyInput{Actor: owner, ReservationID: 3, General: 3})
	assert.True(t, httperr.IsBusiness(err, "survey_not_allowed"))

	_, err = uc.Execute(ctx, SubmitSurveyInput{Actor: other, ReservationID: 1, General: 3})
	assert.True(t, httperr.IsBusiness(err, "reservation_not_found"))

	_, err = uc.Execute(ctx, SubmitSurveyInput{Actor: owner, ReservationID: 1, General: 9})
	assert.True(t, httperr.IsBusiness(err, "invalid_rating"))

	_, err = uc.Execute(ctx, SubmitSurveyInput{
		Actor: actor.Actor{UserID: 1, Role: actor.RoleAdmin}, ReservationID: 1, General: 3,
	})
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	assert.Empty(t, surveys.created)
}
