// Package customer gerencia os clientes de um dono
package customer

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

//go:generate mockgen -source=service.go -destination=mocks/customer_service_mock.go -package=mocks
type CustomerService interface {
	Create(ctx context.Context, ownerID int, req domain.CreateCustomerRequest) (*domain.Customer, error)
	List(ctx context.Context, ownerID int, filters domain.CustomerFilters) (*domain.CustomerListResponse, error)
	Get(ctx context.Context, ownerID int, customerID string) (*domain.Customer, error)
	Update(ctx context.Context, ownerID int, customerID string, req domain.UpdateCustomerRequest) (*domain.Customer, error)
	Delete(ctx context.Context, ownerID int, customerID string) error
}

type Service struct {
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	invalidator  reporting.ReportInvalidator
	pagination   config.Pagination
}

// NewService aceita invalidator nil quando o cache de relatórios está desabilitado
func NewService(
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	invalidator reporting.ReportInvalidator,
	pagination config.Pagination,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		invalidator:  invalidator,
		pagination:   pagination,
	}
}

func (s *Service) Create(ctx context.Context, ownerID int, req domain.CreateCustomerRequest) (*domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	email := utils.NormalizeEmail(req.Email)

	if name == "" || email == "" {
		return nil, NewCustomerError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome e email são obrigatórios")
	}

	if !utils.IsValidEmail(email) {
		return nil, NewCustomerError(ErrInvalidEmail, apiErrors.ErrInvalidFormat, email)
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "customers: gerar id")
	}

	customer := &domain.Customer{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		Email:     email,
		Phone:     optional(req.Phone),
		Address:   optional(req.Address),
		BirthDate: birthDate,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, NewCustomerError(ErrEmailAlreadyUsed, apiErrors.ErrEmailConflict, emailConflictMessage)
		}
		return nil, errors.Wrap(err, "customers: criar cliente")
	}

	// totalCustomers do relatório muda mesmo sem vendas
	s.invalidate(ctx, ownerID)

	log.ForContext(ctx).WithFields(log.Fields{
		"owner_id":    ownerID,
		"customer_id": customer.ID,
	}).Info("customers: cliente criado")

	return customer, nil
}

// List devolve os clientes do dono com as vendas de cada um, da mais recente para a mais antiga
func (s *Service) List(ctx context.Context, ownerID int, filters domain.CustomerFilters) (*domain.CustomerListResponse, error) {
	filters.Page, filters.Limit = domain.NormalizePage(filters.Page, filters.Limit, s.pagination.DefaultLimit, s.pagination.MaxLimit)

	customers, total, err := s.customerRepo.List(ctx, ownerID, filters)
	if err != nil {
		return nil, errors.Wrap(err, "customers: listar clientes")
	}

	ids := make([]string, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.ID)
	}

	sales, err := s.saleRepo.ListByCustomerIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, errors.Wrap(err, "customers: listar vendas dos clientes")
	}

	salesByCustomer := make(map[string][]domain.CustomerSale, len(customers))
	for _, sale := range sales {
		salesByCustomer[sale.CustomerID] = append(salesByCustomer[sale.CustomerID], sale)
	}

	items := make([]*domain.CustomerListItem, 0, len(customers))
	for _, c := range customers {
		customerSales := salesByCustomer[c.ID]
		if customerSales == nil {
			customerSales = []domain.CustomerSale{}
		}

		totalAmount := decimal.Zero
		for _, sale := range customerSales {
			totalAmount = totalAmount.Add(sale.Amount)
		}

		items = append(items, &domain.CustomerListItem{
			Customer:      c,
			Sales:         customerSales,
			TotalSales:    len(customerSales),
			TotalAmount:   totalAmount,
			MissingLetter: utils.MissingLetter(c.Name),
		})
	}

	return &domain.CustomerListResponse{
		Customers:  items,
		Pagination: domain.NewPagination(filters.Page, filters.Limit, total),
	}, nil
}

func (s *Service) Get(ctx context.Context, ownerID int, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, ownerID, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "customers: buscar cliente")
	}

	if customer == nil {
		return nil, NewCustomerErrorWithID(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound, customerID, "")
	}

	return customer, nil
}

// Update aplica apenas os campos informados. Campos opcionais enviados como "" são limpos.
func (s *Service) Update(ctx context.Context, ownerID int, customerID string, req domain.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.Get(ctx, ownerID, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewCustomerErrorWithID(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, customerID, "Nome não pode ser vazio")
		}
		customer.Name = name
	}

	if req.Email != nil {
		email := utils.NormalizeEmail(*req.Email)
		if !utils.IsValidEmail(email) {
			return nil, NewCustomerErrorWithID(ErrInvalidEmail, apiErrors.ErrInvalidFormat, customerID, email)
		}
		customer.Email = email
	}

	if req.Phone != nil {
		customer.Phone = optional(req.Phone)
	}

	if req.Address != nil {
		customer.Address = optional(req.Address)
	}

	if req.BirthDate != nil {
		birthDate, err := parseBirthDate(req.BirthDate)
		if err != nil {
			return nil, err
		}
		customer.BirthDate = birthDate
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, NewCustomerErrorWithID(ErrEmailAlreadyUsed, apiErrors.ErrEmailConflict, customerID, emailConflictMessage)
		}
		return nil, errors.Wrap(err, "customers: atualizar cliente")
	}

	s.invalidate(ctx, ownerID)

	return customer, nil
}

// Delete remove o cliente e, em cascata, as vendas dele
func (s *Service) Delete(ctx context.Context, ownerID int, customerID string) error {
	deleted, err := s.customerRepo.Delete(ctx, ownerID, customerID)
	if err != nil {
		return errors.Wrap(err, "customers: remover cliente")
	}

	if !deleted {
		return NewCustomerErrorWithID(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound, customerID, "")
	}

	s.invalidate(ctx, ownerID)

	log.ForContext(ctx).WithFields(log.Fields{
		"owner_id":    ownerID,
		"customer_id": customerID,
	}).Info("customers: cliente removido")

	return nil
}

func (s *Service) invalidate(ctx context.Context, ownerID int) {
	if s.invalidator != nil {
		s.invalidator.InvalidateOwner(ctx, ownerID)
	}
}

func parseBirthDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	date, err := utils.ParseDate(strings.TrimSpace(*value))
	if err != nil {
		return nil, NewCustomerError(ErrInvalidBirthDate, apiErrors.ErrInvalidFormat, err.Error())
	}

	return date, nil
}

func optional(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
