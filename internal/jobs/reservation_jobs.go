package jobs

import (
	"context"

	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
)

func (jr *JobRunner) CompletePastReservations() {
	jr.runWithRecovery("CompletePastReservations", func(ctx context.Context) {
		n, err := jr.completer.Execute(ctx)
		if err != nil {
			logger.Error("Failed to complete past reservations", "error", err)
			return
		}
		logger.Info("Past reservations completed", "count", n)
	})
}

func (jr *JobRunner) AlertUpcomingPending() {
	jr.runWithRecovery("AlertUpcomingPending", func(ctx context.Context) {
		n, err := jr.alerter.Execute(ctx)
		if err != nil {
			logger.Error("Failed to alert upcoming pending reservations", "error", err)
			return
		}
		logger.Info("Upcoming pending alerts sent", "count", n)
	})
}
