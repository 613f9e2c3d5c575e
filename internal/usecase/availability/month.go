package availability

import (
	"context"
	"time"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
)

// PastCompleter garante que reservas vencidas já foram concluídas antes
// de montar o calendário.
type PastCompleter interface {
	BeforeRead(ctx context.Context)
}

type MonthAvailability struct {
	repo      domain.Repository
	cache     domain.CalendarCache
	completer PastCompleter
}

func NewMonthAvailability(
	repo domain.Repository,
	cache domain.CalendarCache,
	completer PastCompleter,
) *MonthAvailability {
	return &MonthAvailability{
		repo:      repo,
		cache:     cache,
		completer: completer,
	}
}

// Execute monta o calendário do mês. withIDs=false devolve a visão
// pública, sem ids de reservas/manutenções.
func (uc *MonthAvailability) Execute(
	ctx context.Context,
	year int,
	month int,
	withIDs bool,
) (*domain.Calendar, error) {

	window, err := dates.Month(year, time.Month(month))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	uc.completer.BeforeRead(ctx)

	cal, hit := uc.cache.Get(ctx, year, month)
	if !hit {
		cabins, err := uc.repo.ListCabins(ctx)
		if err != nil {
			return nil, err
		}

		// uma consulta para o mês inteiro; os dias são percorridos em memória
		intervals, err := uc.repo.ListCabinIntervals(ctx, window)
		if err != nil {
			return nil, err
		}

		cal = domain.BuildCalendar(window, cabins, intervals)
		uc.cache.Set(ctx, cal)

		logger.Debug("calendar built",
			"year", year,
			"month", month,
			"cabins", len(cabins),
			"intervals", len(intervals),
		)
	}

	if !withIDs {
		return cal.Public(), nil
	}
	return cal, nil
}
