package reservation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

const DefaultLeadDays = 4

// ===============================
// Creation rules
// ===============================

// CheckLeadTime exige start >= today + leadDays.
func CheckLeadTime(start, today time.Time, leadDays int) error {
	earliest := dates.Day(today).AddDate(0, 0, leadDays)
	if dates.Day(start).Before(earliest) {
		return httperr.ErrBusiness("too_soon")
	}
	return nil
}

// Quote = noites × preço da diária, congelado na criação.
func Quote(r dates.Range, nightlyPrice decimal.Decimal) decimal.Decimal {
	return nightlyPrice.Mul(decimal.NewFromInt(int64(r.Nights()))).Round(2)
}

func Period(r *models.Reservation) dates.Range {
	return dates.Range{Start: dates.Day(r.StartDate), End: dates.Day(r.EndDate)}
}

// ===============================
// Domain Actions
// ===============================

func Confirm(r *models.Reservation, now time.Time) error {
	if err := CanConfirm(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusConfirmed)
	r.ConfirmedAt = &now
	return nil
}

func Cancel(r *models.Reservation, by actor.Actor, now time.Time) error {
	if !by.Is(actor.RoleAdmin) && !by.Owns(r.ClientID) {
		return httperr.ErrForbidden("forbidden")
	}

	if err := CanCancel(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCancelled)
	r.CancelledAt = &now
	r.CancelledBy = &by.UserID
	return nil
}

func Complete(r *models.Reservation, now time.Time) error {
	if err := CanComplete(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCompleted)
	r.CompletedAt = &now
	return nil
}

// IsPastDue: confirmada com saída estritamente antes de hoje.
func IsPastDue(r *models.Reservation, today time.Time) bool {
	return Status(r.Status) == StatusConfirmed &&
		dates.Day(r.EndDate).Before(dates.Day(today))
}
