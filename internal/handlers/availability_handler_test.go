package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
	ucAvailability "github.com/BruksfildServices01/cabin-scheduler/internal/usecase/availability"
)

type calendarRepo struct {
	intervals []availability.Interval
}

func (r calendarRepo) ListBlockingIntervals(_ context.Context, ref availability.ResourceRef, w dates.Range) ([]availability.Interval, error) {
	var out []availability.Interval
	for _, iv := range r.intervals {
		if iv.Resource == ref && iv.Range.Overlaps(w) {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (r calendarRepo) ListCabins(context.Context) ([]availability.CabinInfo, error) {
	return []availability.CabinInfo{{ID: 1, Name: "Lenga"}}, nil
}

func (r calendarRepo) ListCabinIntervals(context.Context, dates.Range) ([]availability.Interval, error) {
	return r.intervals, nil
}

type noopCompleter struct{}

func (noopCompleter) BeforeRead(context.Context) {}

func availabilityRouter() *gin.Engine {
	repo := calendarRepo{intervals: []availability.Interval{{
		Resource: availability.Cabin(1),
		Reason:   availability.ReasonReserved,
		SourceID: 42,
		Range: dates.Range{
			Start: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
		},
	}}}

	h := NewAvailabilityHandler(
		ucAvailability.NewCheckAvailability(repo),
		ucAvailability.NewMonthAvailability(repo, availability.NopCache{}, noopCompleter{}),
		timezone.FixedClock{At: time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)},
	)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/availability", h.Check)
	r.GET("/public/calendar", h.PublicCalendar)
	r.GET("/calendar", h.StaffCalendar)
	return r
}

func get(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestAvailabilityHandler_Check(t *testing.T) {
	r := availabilityRouter()

	w := get(r, "/availability?cabin_id=1&start_date=2026-04-11&end_date=2026-04-13")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available":false`)

	w = get(r, "/availability?cabin_id=1&start_date=2026-04-12&end_date=2026-04-13")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available":true`)

	w = get(r, "/availability?start_date=2026-04-12&end_date=2026-04-13")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(r, "/availability?cabin_id=1&start_date=2026-04-13&end_date=2026-04-12")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date_range", errorCode(t, w))
}

func TestAvailabilityHandler_Calendar(t *testing.T) {
	r := availabilityRouter()

	// sem parâmetros: mês corrente do relógio
	w := get(r, "/calendar")
	require.Equal(t, http.StatusOK, w.Code)

	var cal availability.Calendar
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cal))
	assert.Equal(t, 2026, cal.Year)
	assert.Equal(t, 4, cal.Month)
	require.Len(t, cal.Days, 30)
	require.NotNil(t, cal.Days[9].Cabins[0].SourceID)
	assert.Equal(t, uint(42), *cal.Days[9].Cabins[0].SourceID)

	w = get(r, "/public/calendar?year=2026&month=4")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "source_id")
	assert.Contains(t, w.Body.String(), `"occupied":true`)

	w = get(r, "/public/calendar?year=2026&month=abril")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_month", errorCode(t, w))
}
