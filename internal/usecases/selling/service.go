// Package selling registra e consulta as vendas de um dono
package selling

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/toy-store-api/infrastructure/repository"
	"github.com/vfg2006/toy-store-api/internal/config"
	"github.com/vfg2006/toy-store-api/internal/domain"
	"github.com/vfg2006/toy-store-api/internal/usecases/reporting"
	"github.com/vfg2006/toy-store-api/pkg/apiErrors"
	"github.com/vfg2006/toy-store-api/pkg/log"
	"github.com/vfg2006/toy-store-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/sale_service_mock.go -package=mocks
type SaleService interface {
	Create(ctx context.Context, ownerID int, req domain.CreateSaleRequest) (*domain.Sale, error)
	List(ctx context.Context, ownerID int, filters domain.SaleFilters) (*domain.SaleListResponse, error)
	Get(ctx context.Context, ownerID int, saleID string) (*domain.Sale, error)
	Update(ctx context.Context, ownerID int, saleID string, req domain.UpdateSaleRequest) (*domain.Sale, error)
	Delete(ctx context.Context, ownerID int, saleID string) error
}

type Service struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	invalidator  reporting.ReportInvalidator
	pagination   config.Pagination
}

// NewService aceita invalidator nil quando o cache de relatórios está desabilitado
func NewService(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	invalidator reporting.ReportInvalidator,
	pagination config.Pagination,
) *Service {
	return &Service{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		invalidator:  invalidator,
		pagination:   pagination,
	}
}

func (s *Service) Create(ctx context.Context, ownerID int, req domain.CreateSaleRequest) (*domain.Sale, error) {
	customerID := strings.TrimSpace(req.CustomerID)
	if customerID == "" || req.Amount == nil || strings.TrimSpace(req.SaleDate) == "" {
		return nil, NewSaleError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "customerId, amount e saleDate são obrigatórios")
	}

	amount, err := validateAmount(*req.Amount)
	if err != nil {
		return nil, err
	}

	saleDate, err := parseSaleDate(req.SaleDate)
	if err != nil {
		return nil, err
	}

	customer, err := s.ownedCustomer(ctx, ownerID, customerID)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "sales: gerar id")
	}

	sale := &domain.Sale{
		ID:           id,
		OwnerID:      ownerID,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Amount:       amount,
		SaleDate:     *saleDate,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, errors.Wrap(err, "sales: criar venda")
	}

	s.invalidate(ctx, ownerID)

	log.ForContext(ctx).WithFields(log.Fields{
		"owner_id": ownerID,
		"sale_id":  sale.ID,
	}).Info("sales: venda registrada")

	return sale, nil
}

func (s *Service) List(ctx context.Context, ownerID int, filters domain.SaleFilters) (*domain.SaleListResponse, error) {
	filters.Page, filters.Limit = domain.NormalizePage(filters.Page, filters.Limit, s.pagination.DefaultLimit, s.pagination.MaxLimit)

	sales, total, err := s.saleRepo.List(ctx, ownerID, filters)
	if err != nil {
		return nil, errors.Wrap(err, "sales: listar vendas")
	}

	return &domain.SaleListResponse{
		Sales:      sales,
		Pagination: domain.NewPagination(filters.Page, filters.Limit, total),
	}, nil
}

func (s *Service) Get(ctx context.Context, ownerID int, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, ownerID, saleID)
	if err != nil {
		return nil, errors.Wrap(err, "sales: buscar venda")
	}

	if sale == nil {
		return nil, NewSaleErrorWithID(ErrSaleNotFound, apiErrors.ErrSaleNotFound, saleID, "")
	}

	return sale, nil
}

// Update aplica apenas os campos informados; trocar o cliente exige que ele pertença ao dono
func (s *Service) Update(ctx context.Context, ownerID int, saleID string, req domain.UpdateSaleRequest) (*domain.Sale, error) {
	sale, err := s.Get(ctx, ownerID, saleID)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != nil && strings.TrimSpace(*req.CustomerID) != sale.CustomerID {
		customer, err := s.ownedCustomer(ctx, ownerID, strings.TrimSpace(*req.CustomerID))
		if err != nil {
			return nil, err
		}
		sale.CustomerID = customer.ID
		sale.CustomerName = customer.Name
	}

	if req.Amount != nil {
		amount, err := validateAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		sale.Amount = amount
	}

	if req.SaleDate != nil {
		saleDate, err := parseSaleDate(*req.SaleDate)
		if err != nil {
			return nil, err
		}
		sale.SaleDate = *saleDate
	}

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, errors.Wrap(err, "sales: atualizar venda")
	}

	s.invalidate(ctx, ownerID)

	return sale, nil
}

func (s *Service) Delete(ctx context.Context, ownerID int, saleID string) error {
	deleted, err := s.saleRepo.Delete(ctx, ownerID, saleID)
	if err != nil {
		return errors.Wrap(err, "sales: remover venda")
	}

	if !deleted {
		return NewSaleErrorWithID(ErrSaleNotFound, apiErrors.ErrSaleNotFound, saleID, "")
	}

	s.invalidate(ctx, ownerID)

	return nil
}

func (s *Service) ownedCustomer(ctx context.Context, ownerID int, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, ownerID, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "sales: buscar cliente")
	}

	if customer == nil {
		return nil, NewSaleError(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound, customerID)
	}

	return customer, nil
}

func (s *Service) invalidate(ctx context.Context, ownerID int) {
	if s.invalidator != nil {
		s.invalidator.InvalidateOwner(ctx, ownerID)
	}
}

func validateAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, NewSaleError(ErrInvalidAmount, apiErrors.ErrInvalidRequest, "O valor deve ser maior ou igual a zero")
	}
	return utils.RoundMoney(amount), nil
}

func parseSaleDate(value string) (*time.Time, error) {
	saleDate, err := utils.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return nil, NewSaleError(ErrInvalidSaleDate, apiErrors.ErrInvalidFormat, err.Error())
	}

	if saleDate == nil {
		return nil, NewSaleError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "saleDate é obrigatório")
	}

	return saleDate, nil
}
