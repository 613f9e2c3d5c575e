package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

func iptr(v int) *int { return &v }

func TestEligible(t *testing.T) {
	assert.NoError(t, Eligible(&models.Reservation{Status: "completed"}))

	err := Eligible(&models.Reservation{Status: "confirmed"})
	be, ok := httperr.AsBusiness(err)
	assert.True(t, ok)
	assert.Equal(t, "survey_not_allowed", be.Code)
	assert.Equal(t, "confirmed", be.Meta["current_status"])
}

func TestValidateRatings(t *testing.T) {
	assert.NoError(t, ValidateRatings(&models.Survey{General: 5}))
	assert.NoError(t, ValidateRatings(&models.Survey{General: 1, Cleanliness: iptr(3), Value: iptr(5)}))

	assert.True(t, httperr.IsBusiness(ValidateRatings(&models.Survey{General: 0}), "invalid_rating"))
	assert.True(t, httperr.IsBusiness(ValidateRatings(&models.Survey{General: 4, Service: iptr(6)}), "invalid_rating"))
}
