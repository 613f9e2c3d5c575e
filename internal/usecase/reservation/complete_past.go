package reservation

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

// CompletePastReservations promove confirmed → completed para toda reserva
// cuja saída já passou. Roda no job periódico e antes de qualquer leitura
// que dependa do estado (listas, pesquisa, calendário).
type CompletePastReservations struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache availability.CalendarCache
	clock timezone.Clock
}

func NewCompletePastReservations(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache availability.CalendarCache,
	clock timezone.Clock,
) *CompletePastReservations {
	return &CompletePastReservations{
		repo:  repo,
		audit: audit,
		cache: cache,
		clock: clock,
	}
}

func (uc *CompletePastReservations) Execute(ctx context.Context) (int64, error) {
	now := uc.clock.Now()

	n, err := uc.repo.CompletePastConfirmed(ctx, dates.Day(now), now)
	if err != nil {
		return 0, err
	}

	if n > 0 {
		uc.cache.InvalidateAll(ctx)

		uc.audit.Dispatch(audit.Event{
			Action:   "reservations_auto_completed",
			Entity:   "reservation",
			Metadata: map[string]any{"count": n},
		})
	}

	return n, nil
}

// BeforeRead é a versão tolerante usada nos caminhos de leitura: uma
// falha aqui não derruba a consulta.
func (uc *CompletePastReservations) BeforeRead(ctx context.Context) {
	if _, err := uc.Execute(ctx); err != nil {
		logger.WarnContext(ctx, "auto-complete before read failed", "error", err)
	}
}
