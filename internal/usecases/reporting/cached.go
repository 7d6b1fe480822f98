package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/toy-store-api/infrastructure/cache"
	"github.com/vfg2006/toy-store-api/internal/domain"
	"github.com/vfg2006/toy-store-api/pkg/log"
	"github.com/vfg2006/toy-store-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReportInvalidator descarta relatórios em cache após escrita de vendas ou clientes
type ReportInvalidator interface {
	InvalidateOwner(ctx context.Context, ownerID int)
}

// CachedAggregator guarda os relatórios no Redis por dono. Falhas do cache não
// interrompem o cálculo: são logadas e o relatório é calculado pelo agregador interno.
type CachedAggregator struct {
	next  SalesAggregator
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedAggregator(next SalesAggregator, c cache.Cache, ttl time.Duration) *CachedAggregator {
	return &CachedAggregator{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

func DailyKey(ownerID int) string {
	return fmt.Sprintf("reports:%d:daily", ownerID)
}

func TopCustomersKey(ownerID int) string {
	return fmt.Sprintf("reports:%d:top", ownerID)
}

func (a *CachedAggregator) GetDailySalesStats(ctx context.Context, ownerID int) ([]domain.DailySalesStat, error) {
	key := DailyKey(ownerID)

	var cached []domain.DailySalesStat
	if a.load(ctx, reportDaily, key, &cached) {
		return cached, nil
	}

	stats, err := a.next.GetDailySalesStats(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	a.store(ctx, key, stats)
	return stats, nil
}

func (a *CachedAggregator) GetTopCustomers(ctx context.Context, ownerID int) (*domain.TopCustomersReport, error) {
	key := TopCustomersKey(ownerID)

	var cached domain.TopCustomersReport
	if a.load(ctx, reportTop, key, &cached) {
		return &cached, nil
	}

	report, err := a.next.GetTopCustomers(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	a.store(ctx, key, report)
	return report, nil
}

func (a *CachedAggregator) InvalidateOwner(ctx context.Context, ownerID int) {
	if err := a.cache.Delete(ctx, DailyKey(ownerID), TopCustomersKey(ownerID)); err != nil {
		log.ForContext(ctx).WithError(err).WithField("owner_id", ownerID).
			Warn("reporting: falha ao invalidar cache de relatórios")
	}
}

func (a *CachedAggregator) load(ctx context.Context, report, key string, dest any) bool {
	raw, err := a.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.ForContext(ctx).WithError(err).WithField("key", key).Warn("reporting: falha ao ler cache")
		}
		metrics.ReportCacheResults.WithLabelValues(report, "miss").Inc()
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", key).Warn("reporting: valor inválido no cache")
		metrics.ReportCacheResults.WithLabelValues(report, "miss").Inc()
		return false
	}

	metrics.ReportCacheResults.WithLabelValues(report, "hit").Inc()
	return true
}

func (a *CachedAggregator) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", key).Warn("reporting: falha ao serializar relatório")
		return
	}

	if err := a.cache.Set(ctx, key, string(raw), a.ttl); err != nil {
		log.ForContext(ctx).WithError(err).WithField("key", key).Warn("reporting: falha ao gravar cache")
	}
}
