// Package reporting calcula as estatísticas de vendas de um dono (loja)
package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/toy-store-api/infrastructure/repository"
	"github.com/vfg2006/toy-store-api/internal/domain"
	"github.com/vfg2006/toy-store-api/pkg/log"
	"github.com/vfg2006/toy-store-api/pkg/metrics"
	"github.com/vfg2006/toy-store-api/pkg/utils"
)

// UnknownCustomerName é usado quando o cliente da venda não existe mais para o dono
const UnknownCustomerName = "Unknown"

const (
	reportDaily = "daily"
	reportTop   = "top_customers"
)

//go:generate mockgen -source=service.go -destination=mocks/aggregator_mock.go -package=mocks

type SalesAggregator interface {
	GetDailySalesStats(ctx context.Context, ownerID int) ([]domain.DailySalesStat, error)
	GetTopCustomers(ctx context.Context, ownerID int) (*domain.TopCustomersReport, error)
}

type ReportService struct {
	SaleRepository     repository.SaleRepository
	CustomerRepository repository.CustomerRepository
}

func NewReportService(
	saleRepository repository.SaleRepository,
	customerRepository repository.CustomerRepository,
) *ReportService {
	return &ReportService{
		SaleRepository:     saleRepository,
		CustomerRepository: customerRepository,
	}
}

// GetDailySalesStats devolve uma linha por data de venda, da mais recente para a mais antiga
func (s *ReportService) GetDailySalesStats(ctx context.Context, ownerID int) ([]domain.DailySalesStat, error) {
	defer metrics.ObserveReport(reportDaily, time.Now())

	groups, err := s.SaleRepository.ListSalesGroupedByDate(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "reporting: agrupar vendas por data")
	}

	stats := make([]domain.DailySalesStat, 0, len(groups))
	for _, group := range groups {
		stats = append(stats, domain.DailySalesStat{
			Date:        utils.FormatDate(group.Date),
			TotalSales:  group.Count,
			TotalAmount: utils.DecimalOrZero(group.Sum),
		})
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"owner_id": ownerID,
		"days":     len(stats),
	}).Debug("reporting: estatísticas diárias calculadas")

	return stats, nil
}

// GetTopCustomers aponta o cliente de maior volume, o de maior ticket médio e o de mais dias exclusivos.
// Em empate vence o primeiro cliente na ordem do agrupamento.
func (s *ReportService) GetTopCustomers(ctx context.Context, ownerID int) (*domain.TopCustomersReport, error) {
	defer metrics.ObserveReport(reportTop, time.Now())

	groups, err := s.SaleRepository.ListSalesGroupedByCustomer(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "reporting: agrupar vendas por cliente")
	}

	totalCustomers, err := s.CustomerRepository.Count(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "reporting: contar clientes")
	}

	report := &domain.TopCustomersReport{TotalCustomers: totalCustomers}
	if len(groups) == 0 {
		return report, nil
	}

	exclusiveDays, err := s.exclusiveDaysByCustomer(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stats := make([]*domain.CustomerStat, 0, len(groups))
	for _, group := range groups {
		name, err := s.customerName(ctx, ownerID, group.CustomerID)
		if err != nil {
			return nil, err
		}

		stats = append(stats, &domain.CustomerStat{
			CustomerID:    group.CustomerID,
			CustomerName:  name,
			TotalVolume:   utils.DecimalOrZero(group.Sum),
			AverageValue:  utils.RoundMoney(utils.DecimalOrZero(group.Avg)),
			TotalSales:    group.Count,
			ExclusiveDays: exclusiveDays[group.CustomerID],
		})
	}

	report.HighestVolume = pickMax(stats, func(c *domain.CustomerStat) decimal.Decimal { return c.TotalVolume })
	report.HighestAverage = pickMax(stats, func(c *domain.CustomerStat) decimal.Decimal { return c.AverageValue })
	report.MostFrequent = pickMax(stats, func(c *domain.CustomerStat) decimal.Decimal {
		return decimal.NewFromInt(int64(c.ExclusiveDays))
	})

	log.ForContext(ctx).WithFields(log.Fields{
		"owner_id":        ownerID,
		"customers":       len(stats),
		"total_customers": totalCustomers,
	}).Debug("reporting: top clientes calculado")

	return report, nil
}

// exclusiveDaysByCustomer conta, para cada cliente, as datas em que ele foi o único a comprar.
// Uma única leitura dos pares (data, cliente) alimenta o mapa data -> clientes.
func (s *ReportService) exclusiveDaysByCustomer(ctx context.Context, ownerID int) (map[string]int, error) {
	pairs, err := s.SaleRepository.ListSaleDatesWithCustomer(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "reporting: listar datas de venda")
	}

	customersByDate := make(map[string]map[string]struct{})
	for _, pair := range pairs {
		date := utils.FormatDate(pair.Date)
		if customersByDate[date] == nil {
			customersByDate[date] = make(map[string]struct{})
		}
		customersByDate[date][pair.CustomerID] = struct{}{}
	}

	exclusive := make(map[string]int)
	for _, customers := range customersByDate {
		if len(customers) != 1 {
			continue
		}
		for customerID := range customers {
			exclusive[customerID]++
		}
	}

	return exclusive, nil
}

func (s *ReportService) customerName(ctx context.Context, ownerID int, customerID string) (string, error) {
	customer, err := s.CustomerRepository.GetByID(ctx, ownerID, customerID)
	if err != nil {
		return "", errors.Wrapf(err, "reporting: buscar cliente %s", customerID)
	}

	if customer == nil {
		return UnknownCustomerName, nil
	}

	return customer.Name, nil
}

// pickMax percorre da esquerda para a direita e só troca o atual com valor estritamente maior
func pickMax(stats []*domain.CustomerStat, value func(*domain.CustomerStat) decimal.Decimal) *domain.CustomerStat {
	if len(stats) == 0 {
		return nil
	}

	best := stats[0]
	for _, candidate := range stats[1:] {
		if value(candidate).GreaterThan(value(best)) {
			best = candidate
		}
	}

	return best
}
