package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/toy-store-api/infrastructure/repository/mocks"
	"github.com/vfg2006/toy-store-api/internal/config"
	"github.com/vfg2006/toy-store-api/internal/domain"
	reportingmocks "github.com/vfg2006/toy-store-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

type snapshotFixture struct {
	service    *ReportSnapshotService
	users      *mocks.MockUserRepository
	snapshots  *mocks.MockReportSnapshotRepository
	aggregator *reportingmocks.MockSalesAggregator
}

var fixedNow = time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)

func newSnapshotFixture(t *testing.T) snapshotFixture {
	ctrl := gomock.NewController(t)
	f := snapshotFixture{
		users:      mocks.NewMockUserRepository(ctrl),
		snapshots:  mocks.NewMockReportSnapshotRepository(ctrl),
		aggregator: reportingmocks.NewMockSalesAggregator(ctrl),
	}
	f.service = NewReportSnapshotService(f.users, f.snapshots, f.aggregator, config.ReportSnapshot{
		CronSchedule: "0 2 * * *",
		Enabled:      true,
	})
	f.service.now = func() time.Time { return fixedNow }
	return f
}

func TestReportSnapshotService_RunSnapshots(t *testing.T) {
	t.Run("Grava um snapshot por dono", func(t *testing.T) {
		f := newSnapshotFixture(t)

		f.users.EXPECT().ListUserIDs(gomock.Any()).Return([]int{1, 2}, nil)
		f.aggregator.EXPECT().GetTopCustomers(gomock.Any(), 1).Return(&domain.TopCustomersReport{TotalCustomers: 3}, nil)
		f.aggregator.EXPECT().GetTopCustomers(gomock.Any(), 2).Return(&domain.TopCustomersReport{TotalCustomers: 0}, nil)

		var (
			mu    sync.Mutex
			saved = map[int]*domain.TopCustomersSnapshot{}
		)
		f.snapshots.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snapshot *domain.TopCustomersSnapshot) error {
				mu.Lock()
				defer mu.Unlock()
				saved[snapshot.OwnerID] = snapshot
				return nil
			}).Times(2)

		err := f.service.RunSnapshots(context.Background())

		require.NoError(t, err)
		require.Len(t, saved, 2)
		assert.Equal(t, 3, saved[1].Report.TotalCustomers)
		assert.Equal(t, fixedNow, saved[2].ComputedAt)

		status := f.service.GetStatus()
		assert.Equal(t, 2, status["last_sync_owners"])
		assert.Equal(t, 0, status["last_sync_failures"])
		assert.Equal(t, false, status["sync_running"])
	})

	t.Run("Falha de um dono não interrompe os demais", func(t *testing.T) {
		f := newSnapshotFixture(t)

		f.users.EXPECT().ListUserIDs(gomock.Any()).Return([]int{1, 2}, nil)
		f.aggregator.EXPECT().GetTopCustomers(gomock.Any(), 1).Return(nil, errors.New("db down"))
		f.aggregator.EXPECT().GetTopCustomers(gomock.Any(), 2).Return(&domain.TopCustomersReport{}, nil)
		f.snapshots.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		err := f.service.RunSnapshots(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, f.service.GetStatus()["last_sync_failures"])
	})

	t.Run("Erro ao listar donos", func(t *testing.T) {
		f := newSnapshotFixture(t)
		f.users.EXPECT().ListUserIDs(gomock.Any()).Return(nil, errors.New("db down"))

		err := f.service.RunSnapshots(context.Background())

		assert.Error(t, err)
		assert.Equal(t, false, f.service.GetStatus()["sync_running"])
	})

	t.Run("Execução concorrente é ignorada", func(t *testing.T) {
		f := newSnapshotFixture(t)
		require.True(t, f.service.begin())

		err := f.service.RunSnapshots(context.Background())

		assert.NoError(t, err)
		assert.False(t, f.service.TriggerManualSync())
	})
}

func TestReportSnapshotService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda", func(t *testing.T) {
		f := newSnapshotFixture(t)
		f.service.config.Enabled = false

		assert.NoError(t, f.service.Start(context.Background()))
		assert.Empty(t, f.service.scheduler.Jobs())
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		f := newSnapshotFixture(t)
		f.service.config.CronSchedule = "not a cron"

		assert.Error(t, f.service.Start(context.Background()))
	})

	t.Run("Agenda e para com o contexto", func(t *testing.T) {
		f := newSnapshotFixture(t)
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, f.service.Start(ctx))
		assert.Len(t, f.service.scheduler.Jobs(), 1)

		cancel()
	})
}
