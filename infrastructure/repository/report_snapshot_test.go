package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/toy-store-api/internal/domain"
)

func TestReportSnapshotRepository_SaveOrUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	computedAt := time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO top_customers_snapshots (.+) ON CONFLICT \\(owner_id\\) DO UPDATE").
		WithArgs(1, sqlmock.AnyArg(), computedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewReportSnapshotRepository(db)
	err = repo.SaveOrUpdate(context.Background(), &domain.TopCustomersSnapshot{
		OwnerID:    1,
		Report:     domain.TopCustomersReport{TotalCustomers: 2},
		ComputedAt: computedAt,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportSnapshotRepository_GetByOwnerID(t *testing.T) {
	t.Run("Snapshot existente", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		computedAt := time.Now()
		report := `{"highestVolume":{"customerId":"A","customerName":"Ana","totalVolume":"300","averageValue":"150","totalSales":2,"exclusiveDays":1},"highestAverage":null,"mostFrequent":null,"totalCustomers":2}`
		mock.ExpectQuery("SELECT owner_id, report, computed_at FROM top_customers_snapshots WHERE owner_id = \\$1").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"owner_id", "report", "computed_at"}).AddRow(1, []byte(report), computedAt))

		repo := NewReportSnapshotRepository(db)
		snapshot, err := repo.GetByOwnerID(context.Background(), 1)

		require.NoError(t, err)
		require.NotNil(t, snapshot)
		assert.Equal(t, 2, snapshot.Report.TotalCustomers)
		require.NotNil(t, snapshot.Report.HighestVolume)
		assert.True(t, decimal.NewFromInt(300).Equal(snapshot.Report.HighestVolume.TotalVolume))
		assert.Nil(t, snapshot.Report.MostFrequent)
	})

	t.Run("Dono sem snapshot", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM top_customers_snapshots").
			WillReturnRows(sqlmock.NewRows([]string{"owner_id", "report", "computed_at"}))

		repo := NewReportSnapshotRepository(db)
		snapshot, err := repo.GetByOwnerID(context.Background(), 1)

		assert.NoError(t, err)
		assert.Nil(t, snapshot)
	})
}
