package reservation

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/dates"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

// janelas de alerta: dias até o check-in → severidade
var upcomingAlerts = []struct {
	days     int
	severity notify.Severity
}{
	{days: 7, severity: notify.SeverityWarning},
	{days: 3, severity: notify.SeverityError},
}

// AlertUpcomingPending avisa os admins sobre reservas ainda pendentes
// perto do check-in.
type AlertUpcomingPending struct {
	repo     domain.Repository
	notifier notify.Notifier
	clock    timezone.Clock
}

func NewAlertUpcomingPending(
	repo domain.Repository,
	notifier notify.Notifier,
	clock timezone.Clock,
) *AlertUpcomingPending {
	return &AlertUpcomingPending{
		repo:     repo,
		notifier: notifier,
		clock:    clock,
	}
}

func (uc *AlertUpcomingPending) Execute(ctx context.Context) (int, error) {
	today := dates.Day(uc.clock.Now())
	sent := 0

	for _, a := range upcomingAlerts {
		pending, err := uc.repo.ListPendingStartingOn(ctx, today.AddDate(0, 0, a.days))
		if err != nil {
			return sent, err
		}

		for i := range pending {
			uc.notifier.Notify(ctx,
				staffRoles(actor.RoleAdmin),
				upcomingPendingMessage(&pending[i], a.days, a.severity),
			)
			sent++
		}
	}

	return sent, nil
}
