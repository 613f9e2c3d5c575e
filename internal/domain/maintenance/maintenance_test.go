package maintenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func uptr(v uint) *uint { return &v }

func TestTarget_Resolve(t *testing.T) {
	ref, err := Target{CabinID: uptr(1)}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, availability.Cabin(1), ref)

	ref, err = Target{EquipmentID: uptr(4)}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, availability.Equipment(4), ref)

	_, err = Target{}.Resolve()
	assert.True(t, httperr.IsBusiness(err, "invalid_target"))

	_, err = Target{CabinID: uptr(1), EquipmentID: uptr(4)}.Resolve()
	assert.True(t, httperr.IsBusiness(err, "invalid_target"))
}

func TestLifecycle(t *testing.T) {
	w := &models.MaintenanceWindow{Status: string(StatusScheduled)}

	require.NoError(t, Start(w, now))
	assert.Equal(t, string(StatusInProgress), w.Status)

	assert.Error(t, Start(w, now), "não reinicia")

	require.NoError(t, Complete(w, now))
	assert.Equal(t, string(StatusCompleted), w.Status)

	err := Cancel(w, now)
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, "completed", be.Meta["current_status"])
}

func TestComplete_FromScheduled(t *testing.T) {
	w := &models.MaintenanceWindow{Status: string(StatusScheduled)}
	require.NoError(t, Complete(w, now))
	assert.NotNil(t, w.CompletedAt)
}

func TestParseCategoryAndPriority(t *testing.T) {
	c, err := ParseCategory("preventive")
	require.NoError(t, err)
	assert.Equal(t, CategoryPreventive, c)

	_, err = ParseCategory("cosmetic")
	assert.True(t, httperr.IsBusiness(err, "invalid_category"))

	p, err := ParsePriority("")
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, p)

	_, err = ParsePriority("critical")
	assert.True(t, httperr.IsBusiness(err, "invalid_priority"))
}
