package availability

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
)

type IntervalSource interface {
	// reservas pending/confirmed + manutenções scheduled/in_progress
	// do recurso que tocam a janela
	ListBlockingIntervals(
		ctx context.Context,
		ref ResourceRef,
		window dates.Range,
	) ([]Interval, error)
}

type Checker struct {
	src IntervalSource
}

func NewChecker(src IntervalSource) *Checker {
	return &Checker{src: src}
}

// Check devolve o conflito encontrado, se houver.
func (c *Checker) Check(
	ctx context.Context,
	ref ResourceRef,
	r dates.Range,
) (*Interval, error) {

	intervals, err := c.src.ListBlockingIntervals(ctx, ref, r)
	if err != nil {
		return nil, err
	}

	if iv, found := FirstConflict(intervals, r); found {
		return &iv, nil
	}
	return nil, nil
}

// IsBlocked falha fechado: erro de consulta conta como indisponível.
func (c *Checker) IsBlocked(
	ctx context.Context,
	ref ResourceRef,
	r dates.Range,
) bool {

	conflict, err := c.Check(ctx, ref, r)
	if err != nil {
		logger.WarnContext(ctx, "availability check failed, treating as blocked",
			"resource_kind", ref.Kind,
			"resource_id", ref.ID,
			"error", err,
		)
		return true
	}
	return conflict != nil
}

// Repository alimenta o calendário mensal.
type Repository interface {
	IntervalSource

	ListCabins(ctx context.Context) ([]CabinInfo, error)

	// intervalos bloqueantes de todas as cabanas que tocam a janela
	ListCabinIntervals(ctx context.Context, window dates.Range) ([]Interval, error)
}
