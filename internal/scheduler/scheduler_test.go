package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cabin-scheduler/internal/config"
	"github.com/BruksfildServices01/cabin-scheduler/internal/jobs"
)

type noop struct{}

func (noop) Execute(context.Context) (int64, error) { return 0, nil }

type noopAlert struct{}

func (noopAlert) Execute(context.Context) (int, error) { return 0, nil }

func TestNewScheduler_RegistersBothJobs(t *testing.T) {
	s, err := NewScheduler(jobs.NewJobRunner(noop{}, noopAlert{}), config.SchedulerConfig{
		CompletePastReservations: "0 5 0 * * *",
		AlertUpcomingPending:     "0 0 8 * * *",
	}, time.UTC)

	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 2)
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	_, err := NewScheduler(jobs.NewJobRunner(noop{}, noopAlert{}), config.SchedulerConfig{
		CompletePastReservations: "every night",
		AlertUpcomingPending:     "0 0 8 * * *",
	}, time.UTC)

	assert.Error(t, err)
}
