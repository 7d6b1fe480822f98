package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/toy-store-api/infrastructure/database/postgres"
	"github.com/vfg2006/toy-store-api/internal/domain"
)

const reportSnapshotsTable = "top_customers_snapshots"

type ReportSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.TopCustomersSnapshot) error
	GetByOwnerID(ctx context.Context, ownerID int) (*domain.TopCustomersSnapshot, error)
}

type reportSnapshotRepository struct {
	conn postgres.Queryer
}

func NewReportSnapshotRepository(conn postgres.Queryer) ReportSnapshotRepository {
	return &reportSnapshotRepository{
		conn: conn,
	}
}

func (r *reportSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.TopCustomersSnapshot) error {
	report, err := json.Marshal(snapshot.Report)
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório: %w", err)
	}

	query, args, err := psql.
		Insert(reportSnapshotsTable).
		Columns("owner_id", "report", "computed_at").
		Values(snapshot.OwnerID, report, snapshot.ComputedAt).
		Suffix(`
		ON CONFLICT (owner_id) DO UPDATE SET
			report = EXCLUDED.report,
			computed_at = EXCLUDED.computed_at
	`).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *reportSnapshotRepository) GetByOwnerID(ctx context.Context, ownerID int) (*domain.TopCustomersSnapshot, error) {
	query, args, err := psql.
		Select("owner_id", "report", "computed_at").
		From(reportSnapshotsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		snapshot domain.TopCustomersSnapshot
		report   []byte
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&snapshot.OwnerID, &report, &snapshot.ComputedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	if err := json.Unmarshal(report, &snapshot.Report); err != nil {
		return nil, fmt.Errorf("erro ao desserializar relatório: %w", err)
	}

	return &snapshot, nil
}
