package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/cabin-scheduler/internal/config"
	"github.com/BruksfildServices01/cabin-scheduler/internal/jobs"
	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
)

// Scheduler agenda os jobs no fuso do negócio (as datas de reserva são
// dias civis desse fuso).
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
	cfg  config.SchedulerConfig
}

func NewScheduler(jobRunner *jobs.JobRunner, cfg config.SchedulerConfig, loc *time.Location) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
		cfg:  cfg,
	}

	if err := s.registerJobs(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) registerJobs() error {
	// varredura de reservas encerradas
	if _, err := s.cron.AddFunc(s.cfg.CompletePastReservations, s.jobs.CompletePastReservations); err != nil {
		logger.Error("Failed to register CompletePastReservations job", "error", err)
		return err
	}

	// alertas 7 / 3 dias
	if _, err := s.cron.AddFunc(s.cfg.AlertUpcomingPending, s.jobs.AlertUpcomingPending); err != nil {
		logger.Error("Failed to register AlertUpcomingPending job", "error", err)
		return err
	}

	logger.Info("All cron jobs registered successfully", "entries", len(s.cron.Entries()))
	return nil
}

func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
}

// Stop espera os jobs em execução terminarem.
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}
