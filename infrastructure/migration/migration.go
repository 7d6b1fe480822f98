// Package migration aplica o schema do banco a partir dos arquivos SQL embutidos
package migration

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/toy-store-api/infrastructure/database/postgres"
)

//go:embed sql/*.sql
var files embed.FS

// Transactor é satisfeito por *postgres.Connection
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(postgres.Queryer) error) error
}

// Apply executa as migrações em ordem lexicográfica, uma transação por script. Os scripts são idempotentes.
func Apply(ctx context.Context, db Transactor) error {
	names, err := fs.Glob(files, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("migration: erro ao listar scripts: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("migration: erro ao ler %s: %w", name, err)
		}

		err = db.RunInTransaction(ctx, func(q postgres.Queryer) error {
			_, err := q.ExecContext(ctx, string(script))
			return err
		})
		if err != nil {
			return fmt.Errorf("migration: erro ao aplicar %s: %w", name, err)
		}

		logrus.WithField("script", name).Debug("migration: script aplicado")
	}

	logrus.WithField("total", len(names)).Info("migration: schema atualizado")
	return nil
}
