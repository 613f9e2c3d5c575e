package jobs

import (
	"context"
	"time"

	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
)

// PastCompleter promove reservas confirmadas já encerradas.
type PastCompleter interface {
	Execute(ctx context.Context) (int64, error)
}

// PendingAlerter avisa a administração sobre pendentes que começam em breve.
type PendingAlerter interface {
	Execute(ctx context.Context) (int, error)
}

// JobRunner coordena os jobs agendados.
type JobRunner struct {
	completer PastCompleter
	alerter   PendingAlerter
	timeout   time.Duration
}

func NewJobRunner(completer PastCompleter, alerter PendingAlerter) *JobRunner {
	return &JobRunner{
		completer: completer,
		alerter:   alerter,
		timeout:   2 * time.Minute,
	}
}

// runWithRecovery isola o pânico de um job do resto do processo.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jr.timeout)
	defer cancel()

	logger.Info("Starting job", "job", jobName)
	jobFunc(ctx)
	logger.Info("Job completed", "job", jobName)
}

// RunAll executa todos os jobs uma vez (boot e execução manual).
func (jr *JobRunner) RunAll() {
	jr.CompletePastReservations()
	jr.AlertUpcomingPending()
}
