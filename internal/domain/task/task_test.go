package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

func TestTransition(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		from    Status
		to      Status
		wantErr bool
	}{
		{"inicia", StatusPending, StatusInProgress, false},
		{"conclui direto", StatusPending, StatusCompleted, false},
		{"cancela", StatusInProgress, StatusCancelled, false},
		{"não volta para pendente", StatusInProgress, StatusPending, true},
		{"mesmo estado", StatusPending, StatusPending, true},
		{"concluída é final", StatusCompleted, StatusInProgress, true},
		{"cancelada é final", StatusCancelled, StatusPending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &models.WorkerTask{Status: string(tt.from)}
			err := Transition(task, tt.to, now)

			if tt.wantErr {
				assert.True(t, httperr.IsBusiness(err, "invalid_state"))
				assert.Equal(t, string(tt.from), task.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, string(tt.to), task.Status)
			assert.Equal(t, tt.to == StatusCompleted, task.CompletedAt != nil)
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)

	_, err = ParseStatus("done")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}
