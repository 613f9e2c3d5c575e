package reservation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/payment"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

func seedQuoted(f *fixture, id, clientID uint, status domain.Status, amount int64) {
	today := dates.Day(now)
	seed(f, id, clientID, status, today.AddDate(0, 0, 10), today.AddDate(0, 0, 13))
	f.repo.reservations[id].QuotedAmount = decimal.NewFromInt(amount)
}

func TestPay_SettlesQuotedAmountAndNotifiesStaff(t *testing.T) {
	f := newFixture()
	seedQuoted(f, 1, 10, domain.StatusConfirmed, 150000)

	p, err := f.pay.Execute(context.Background(), client, 1, "")
	require.NoError(t, err)

	assert.True(t, p.Amount.Equal(decimal.NewFromInt(150000)), p.Amount.String())
	assert.Equal(t, string(payment.MethodTransfer), p.Method)
	assert.Equal(t, string(payment.StatusSettled), p.Status)
	require.NotNil(t, p.ReservationID)
	assert.Equal(t, uint(1), *p.ReservationID)
	require.NotNil(t, p.PaidAt)
	assert.Equal(t, now, *p.PaidAt)

	assert.True(t, f.repo.reservations[1].ClientConfirmed)
	assert.Len(t, f.repo.payments, 1)

	msgs := f.notifier.all()
	require.Len(t, msgs, 2)
	assert.ElementsMatch(t, []string{"admin", "manager"}, msgs[0].to.Roles)
	assert.Equal(t, "Pagamento recebido", msgs[0].msg.Title)
	assert.Equal(t, "150000.00", msgs[0].msg.Attributes["amount"])
	assert.Equal(t, []uint{10}, msgs[1].to.UserIDs)
}

func TestPay_IsIdempotentPerReservation(t *testing.T) {
	f := newFixture()
	seedQuoted(f, 1, 10, domain.StatusConfirmed, 150000)

	first, err := f.pay.Execute(context.Background(), client, 1, "card")
	require.NoError(t, err)

	again, err := f.pay.Execute(context.Background(), admin, 1, "cash")
	require.NoError(t, err)

	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, string(payment.MethodCard), again.Method)
	assert.Len(t, f.repo.payments, 1)
	assert.Len(t, f.notifier.all(), 2)
}

func TestPay_CompletesPendingPaymentRecord(t *testing.T) {
	f := newFixture()
	seedQuoted(f, 1, 10, domain.StatusConfirmed, 90000)

	rid := uint(1)
	f.repo.nextID = 40
	f.repo.payments[40] = &models.Payment{
		ID: 40, ReservationID: &rid,
		Amount: decimal.NewFromInt(1), Method: "cash", Status: string(payment.StatusPending),
	}

	p, err := f.pay.Execute(context.Background(), manager, 1, "")
	require.NoError(t, err)

	assert.Equal(t, uint(40), p.ID)
	assert.True(t, p.Amount.Equal(decimal.NewFromInt(90000)))
	assert.Len(t, f.repo.payments, 1)
	assert.Equal(t, string(payment.StatusSettled), f.repo.payments[40].Status)
}

func TestPay_OnlyConfirmedReservations(t *testing.T) {
	f := newFixture()
	seedQuoted(f, 1, 10, domain.StatusPending, 1000)
	seedQuoted(f, 2, 10, domain.StatusCancelled, 1000)

	_, err := f.pay.Execute(context.Background(), client, 1, "")
	be := requireCode(t, err, "invalid_state")
	assert.Equal(t, "pending", be.Meta["current_status"])

	_, err = f.pay.Execute(context.Background(), client, 2, "")
	requireCode(t, err, "invalid_state")

	assert.Empty(t, f.repo.payments)
	assert.False(t, f.repo.reservations[1].ClientConfirmed)
	assert.Empty(t, f.notifier.all())
}

func TestPay_Errors(t *testing.T) {
	f := newFixture()
	seedQuoted(f, 1, 10, domain.StatusConfirmed, 1000)

	_, err := f.pay.Execute(context.Background(), other, 1, "")
	requireCode(t, err, "forbidden")

	_, err = f.pay.Execute(context.Background(), actor.Actor{UserID: 3, Role: actor.RoleWorker}, 1, "")
	requireCode(t, err, "forbidden")

	_, err = f.pay.Execute(context.Background(), client, 1, "crypto")
	requireCode(t, err, "invalid_payment_method")

	_, err = f.pay.Execute(context.Background(), client, 99, "")
	requireCode(t, err, "reservation_not_found")

	assert.Empty(t, f.repo.payments)
}
