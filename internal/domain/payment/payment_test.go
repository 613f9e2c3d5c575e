package payment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, MethodTransfer, m)

	m, err = ParseMethod("card")
	require.NoError(t, err)
	assert.Equal(t, MethodCard, m)

	_, err = ParseMethod("crypto")
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_method"))
}

func TestSettledForLoan(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	p := SettledForLoan(4, decimal.NewFromInt(30000), MethodCash, now)

	assert.NoError(t, Validate(p))
	assert.Equal(t, string(StatusSettled), p.Status)
	assert.Nil(t, p.ReservationID)
}

func TestValidate_ExactlyOneOwner(t *testing.T) {
	id := uint(1)

	assert.True(t, httperr.IsBusiness(Validate(&models.Payment{}), "invalid_payment_owner"))
	assert.True(t, httperr.IsBusiness(
		Validate(&models.Payment{ReservationID: &id, EquipmentLoanID: &id}),
		"invalid_payment_owner",
	))
	assert.True(t, httperr.IsBusiness(
		Validate(&models.Payment{ReservationID: &id, Amount: decimal.NewFromInt(-1)}),
		"invalid_amount",
	))
}

func TestSettleReservation_ReusesExistingRecord(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	fresh := SettleReservation(nil, 9, decimal.NewFromInt(120000), MethodTransfer, now)
	assert.NoError(t, Validate(fresh))
	assert.True(t, IsSettled(fresh))
	require.NotNil(t, fresh.ReservationID)
	assert.Equal(t, uint(9), *fresh.ReservationID)

	existing := &models.Payment{ID: 3, Status: string(StatusPending), Method: string(MethodCash)}
	got := SettleReservation(existing, 9, decimal.NewFromInt(120000), MethodCard, now)

	assert.Same(t, existing, got)
	assert.Equal(t, uint(3), got.ID)
	assert.Equal(t, string(MethodCard), got.Method)
	assert.True(t, IsSettled(got))
	assert.False(t, IsSettled(nil))
}
