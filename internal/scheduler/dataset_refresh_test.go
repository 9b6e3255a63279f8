package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func newRefreshConfig(maxJobs int, enabled bool) *config.Config {
	return &config.Config{
		DatasetRefresh: config.DatasetRefresh{
			CronSchedule:      "*/30 * * * *",
			MaxConcurrentJobs: maxJobs,
			Enabled:           enabled,
		},
	}
}

func TestDatasetRefreshService_refreshAllSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRefresher := mocks.NewMockDatasetRefresher(ctrl)
	service := NewDatasetRefreshService(mockRefresher, newRefreshConfig(2, true))

	sources := []string{"https://a.example.com/a.csv", "https://b.example.com/b.xlsx", "https://c.example.com/c.csv"}

	mockRefresher.EXPECT().Sources().Return(sources).AnyTimes()
	mockRefresher.EXPECT().RefreshSource(gomock.Any(), sources[0]).Return(nil)
	mockRefresher.EXPECT().RefreshSource(gomock.Any(), sources[1]).Return(errors.New("timeout"))
	mockRefresher.EXPECT().RefreshSource(gomock.Any(), sources[2]).Return(nil)

	service.refreshAllSources()

	status := service.GetStatus()
	assert.Equal(t, 1, status["last_sync_failures"])
	assert.Equal(t, 3, status["sources"])
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestDatasetRefreshService_respectsConcurrencyLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRefresher := mocks.NewMockDatasetRefresher(ctrl)
	service := NewDatasetRefreshService(mockRefresher, newRefreshConfig(2, true))

	var running, maxRunning int32
	mockRefresher.EXPECT().
		RefreshSource(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, source string) error {
			current := atomic.AddInt32(&running, 1)
			for {
				seen := atomic.LoadInt32(&maxRunning)
				if current <= seen || atomic.CompareAndSwapInt32(&maxRunning, seen, current) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return nil
		}).
		Times(6)

	failures := service.processSources([]string{"a", "b", "c", "d", "e", "f"})

	assert.Zero(t, failures)
	assert.LessOrEqual(t, atomic.LoadInt32(&maxRunning), int32(2))
}

func TestDatasetRefreshService_skipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRefresher := mocks.NewMockDatasetRefresher(ctrl)
	service := NewDatasetRefreshService(mockRefresher, newRefreshConfig(1, true))

	service.syncRunning = true

	// nenhuma chamada ao serviço enquanto outra recarga está em andamento
	service.refreshAllSources()
	assert.False(t, service.TriggerManualSync())
}

func TestDatasetRefreshService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRefresher := mocks.NewMockDatasetRefresher(ctrl)
	service := NewDatasetRefreshService(mockRefresher, newRefreshConfig(1, false))

	done := make(chan struct{})
	mockRefresher.EXPECT().Sources().Return([]string{"https://a.example.com/a.csv"}).AnyTimes()
	mockRefresher.EXPECT().
		RefreshSource(gomock.Any(), "https://a.example.com/a.csv").
		DoAndReturn(func(ctx context.Context, source string) error {
			close(done)
			return nil
		})

	require.True(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não executada")
	}

	assert.Eventually(t, func() bool { return !service.IsRunning() }, 2*time.Second, 10*time.Millisecond)
}

func TestDatasetRefreshService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewDatasetRefreshService(mocks.NewMockDatasetRefresher(ctrl), newRefreshConfig(1, false))

	require.NoError(t, service.Start(context.Background()))
	assert.Zero(t, service.scheduler.Len())
}

func TestDatasetRefreshService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newRefreshConfig(1, true)
	cfg.DatasetRefresh.CronSchedule = "não é cron"

	service := NewDatasetRefreshService(mocks.NewMockDatasetRefresher(ctrl), cfg)

	assert.Error(t, service.Start(context.Background()))
}

func TestDatasetRefreshService_TriggerManualSyncTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRefresher := mocks.NewMockDatasetRefresher(ctrl)
	service := NewDatasetRefreshService(mockRefresher, newRefreshConfig(1, false))

	release := make(chan struct{})
	mockRefresher.EXPECT().Sources().Return([]string{"https://a.example.com/a.csv"}).AnyTimes()
	mockRefresher.EXPECT().
		RefreshSource(gomock.Any(), "https://a.example.com/a.csv").
		DoAndReturn(func(ctx context.Context, source string) error {
			<-release
			return nil
		}).
		Times(1)

	require.True(t, service.TriggerManualSync())

	// a marcação acontece antes de a goroutine começar
	assert.True(t, service.IsRunning())
	assert.False(t, service.TriggerManualSync())

	close(release)
	assert.Eventually(t, func() bool { return !service.IsRunning() }, 2*time.Second, 10*time.Millisecond)
}
