package availability

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
)

type CheckResult struct {
	CabinID   uint   `json:"cabin_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}

type CheckAvailability struct {
	checker *domain.Checker
}

func NewCheckAvailability(src domain.IntervalSource) *CheckAvailability {
	return &CheckAvailability{checker: domain.NewChecker(src)}
}

// Execute responde se a cabana está livre em [start, end). Erro na
// consulta responde "indisponível".
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	cabinID uint,
	start string,
	end string,
) (*CheckResult, error) {

	period, err := dates.ParseRange(start, end)
	if err != nil {
		if errors.Is(err, dates.ErrInvalidRange) {
			return nil, httperr.ErrBusiness("invalid_date_range")
		}
		return nil, httperr.ErrBusiness("invalid_date")
	}

	blocked := uc.checker.IsBlocked(ctx, domain.Cabin(cabinID), period)

	return &CheckResult{
		CabinID:   cabinID,
		StartDate: dates.Format(period.Start),
		EndDate:   dates.Format(period.End),
		Available: !blocked,
	}, nil
}
