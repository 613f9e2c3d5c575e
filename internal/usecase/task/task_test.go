package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cabin-scheduler/internal/audit"
	"github.com/BruksfildServices01/cabin-scheduler/internal/domain/actor"
	domain "github.com/BruksfildServices01/cabin-scheduler/internal/domain/task"
	"github.com/BruksfildServices01/cabin-scheduler/internal/httperr"
	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
	"github.com/BruksfildServices01/cabin-scheduler/internal/timezone"
)

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) GetTask(ctx context.Context, id uint) (*models.WorkerTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkerTask), args.Error(1)
}

func (m *MockTaskRepo) UpdateTask(ctx context.Context, t *models.WorkerTask) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepo) ListByWorker(ctx context.Context, workerID uint, status *domain.Status) ([]models.WorkerTask, error) {
	args := m.Called(ctx, workerID, status)
	return args.Get(0).([]models.WorkerTask), args.Error(1)
}

var (
	worker  = actor.Actor{UserID: 3, Role: actor.RoleWorker}
	manager = actor.Actor{UserID: 2, Role: actor.RoleManager}
)

func TestListTasks_WorkerSeesOwn(t *testing.T) {
	repo := new(MockTaskRepo)
	ctx := context.Background()
	repo.On("ListByWorker", ctx, uint(3), (*domain.Status)(nil)).Return([]models.WorkerTask{{ID: 1}}, nil)

	// o worker_id informado é ignorado para trabalhadores
	list, err := NewListTasks(repo).Execute(ctx, worker, 99, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	repo.AssertExpectations(t)
}

func TestListTasks_StaffChoosesWorker(t *testing.T) {
	repo := new(MockTaskRepo)
	ctx := context.Background()
	pending := domain.StatusPending
	repo.On("ListByWorker", ctx, uint(7), &pending).Return([]models.WorkerTask{}, nil)

	_, err := NewListTasks(repo).Execute(ctx, manager, 7, &pending)
	require.NoError(t, err)
	repo.AssertExpectations(t)

	_, err = NewListTasks(repo).Execute(ctx, actor.Actor{UserID: 10, Role: actor.RoleClient}, 7, nil)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
}

func TestUpdateTaskStatus(t *testing.T) {
	repo := new(MockTaskRepo)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	repo.On("GetTask", ctx, uint(1)).Return(&models.WorkerTask{ID: 1, WorkerID: 3, Status: "pending"}, nil)
	repo.On("UpdateTask", ctx, mock.MatchedBy(func(t *models.WorkerTask) bool {
		return t.Status == "completed" && t.CompletedAt != nil
	})).Return(nil)

	uc := NewUpdateTaskStatus(repo, audit.NewDispatcher(audit.Discard), timezone.FixedClock{At: now})

	got, err := uc.Execute(ctx, worker, 1, "completed")
	require.NoError(t, err)
	assert.Equal(t, now, *got.CompletedAt)
	repo.AssertExpectations(t)
}

func TestUpdateTaskStatus_Rejections(t *testing.T) {
	repo := new(MockTaskRepo)
	ctx := context.Background()
	repo.On("GetTask", ctx, uint(1)).Return(&models.WorkerTask{ID: 1, WorkerID: 3, Status: "completed"}, nil)
	repo.On("GetTask", ctx, uint(2)).Return(&models.WorkerTask{ID: 2, WorkerID: 8, Status: "pending"}, nil)
	repo.On("GetTask", ctx, uint(404)).Return(nil, httperr.ErrNotFound("task_not_found"))

	uc := NewUpdateTaskStatus(repo, audit.NewDispatcher(audit.Discard), timezone.FixedClock{At: time.Now()})

	_, err := uc.Execute(ctx, worker, 1, "done")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = uc.Execute(ctx, worker, 1, "in_progress")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	_, err = uc.Execute(ctx, worker, 2, "in_progress")
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	_, err = uc.Execute(ctx, worker, 404, "in_progress")
	assert.True(t, httperr.IsBusiness(err, "task_not_found"))

	repo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything)
}
