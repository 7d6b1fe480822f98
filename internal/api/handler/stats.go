package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/toy-store-api/internal/domain"
	"github.com/vfg2006/toy-store-api/internal/usecases/reporting"
	"github.com/vfg2006/toy-store-api/pkg/apiErrors"
)

// SnapshotReader lê o último snapshot de top clientes gravado pelo agendador
type SnapshotReader interface {
	GetByOwnerID(ctx context.Context, ownerID int) (*domain.TopCustomersSnapshot, error)
}

func GetDailySalesStats(aggregator reporting.SalesAggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		stats, err := aggregator.GetDailySalesStats(r.Context(), owner)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular estatísticas diárias")
			return
		}

		if stats == nil {
			stats = []domain.DailySalesStat{}
		}

		writeJSON(w, r, http.StatusOK, stats)
	}
}

func GetTopCustomers(aggregator reporting.SalesAggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		report, err := aggregator.GetTopCustomers(r.Context(), owner)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular top clientes")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

func GetTopCustomersSnapshot(snapshots SnapshotReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := ownerID(w, r)
		if !ok {
			return
		}

		snapshot, err := snapshots.GetByOwnerID(r.Context(), owner)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar snapshot de top clientes")
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Nenhum snapshot calculado para este usuário", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	}
}
