package customer

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/toy-store-api/infrastructure/repository"
	"github.com/vfg2006/toy-store-api/infrastructure/repository/mocks"
	"github.com/vfg2006/toy-store-api/internal/config"
	"github.com/vfg2006/toy-store-api/internal/domain"
	"github.com/vfg2006/toy-store-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fakeInvalidator struct {
	owners []int
}

func (f *fakeInvalidator) InvalidateOwner(_ context.Context, ownerID int) {
	f.owners = append(f.owners, ownerID)
}

type fixture struct {
	service     *Service
	customers   *mocks.MockCustomerRepository
	sales       *mocks.MockSaleRepository
	invalidator *fakeInvalidator
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		customers:   mocks.NewMockCustomerRepository(ctrl),
		sales:       mocks.NewMockSaleRepository(ctrl),
		invalidator: &fakeInvalidator{},
	}
	f.service = NewService(f.customers, f.sales, f.invalidator, config.Pagination{DefaultLimit: 10, MaxLimit: 100})
	return f
}

func strPtr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	t.Run("Sucesso", func(t *testing.T) {
		f := newFixture(t)
		f.customers.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Customer) error {
				assert.Equal(t, 1, c.OwnerID)
				assert.Len(t, c.ID, 16)
				return nil
			})

		customer, err := f.service.Create(context.Background(), 1, domain.CreateCustomerRequest{
			Name:      " Ana Beatriz ",
			Email:     "Ana@Example.com",
			Phone:     strPtr(" "),
			BirthDate: strPtr("1990-05-01"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana Beatriz", customer.Name)
		assert.Equal(t, "ana@example.com", customer.Email)
		assert.Nil(t, customer.Phone)
		require.NotNil(t, customer.BirthDate)
		assert.Equal(t, time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC), *customer.BirthDate)
		assert.Equal(t, []int{1}, f.invalidator.owners)
	})

	validation := []struct {
		name string
		req  domain.CreateCustomerRequest
		err  error
		code string
	}{
		{"Nome ausente", domain.CreateCustomerRequest{Email: "a@b.com"}, ErrMissingRequiredData, apiErrors.ErrMissingRequiredData},
		{"Email inválido", domain.CreateCustomerRequest{Name: "Ana", Email: "ana"}, ErrInvalidEmail, apiErrors.ErrInvalidFormat},
		{"Data de nascimento inválida", domain.CreateCustomerRequest{Name: "Ana", Email: "a@b.com", BirthDate: strPtr("01/05/1990")}, ErrInvalidBirthDate, apiErrors.ErrInvalidFormat},
	}
	for _, tc := range validation {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.service.Create(context.Background(), 1, tc.req)

			assert.ErrorIs(t, err, tc.err)
			var customerErr *CustomerError
			require.ErrorAs(t, err, &customerErr)
			assert.Equal(t, tc.code, customerErr.Code)
		})
	}

	t.Run("Email repetido para o mesmo dono", func(t *testing.T) {
		f := newFixture(t)
		f.customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrUniqueViolation)

		_, err := f.service.Create(context.Background(), 1, domain.CreateCustomerRequest{Name: "Ana", Email: "a@b.com"})

		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
		var customerErr *CustomerError
		require.ErrorAs(t, err, &customerErr)
		assert.Equal(t, "Este email já está sendo usado por outro cliente", customerErr.Details)
	})

	t.Run("Erro de banco é encapsulado", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("db down")
		f.customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(boom)

		_, err := f.service.Create(context.Background(), 1, domain.CreateCustomerRequest{Name: "Ana", Email: "a@b.com"})

		assert.Equal(t, boom, pkgerrors.Cause(err))
	})
}

func TestService_List(t *testing.T) {
	t.Run("Clientes com vendas, totais e letra ausente", func(t *testing.T) {
		f := newFixture(t)
		ana := &domain.Customer{ID: "C1", Name: "Ana"}
		bruno := &domain.Customer{ID: "C2", Name: "Bruno"}

		f.customers.EXPECT().List(gomock.Any(), 1, domain.CustomerFilters{Name: "a", Page: 1, Limit: 10}).
			Return([]*domain.Customer{ana, bruno}, 12, nil)
		f.sales.EXPECT().ListByCustomerIDs(gomock.Any(), 1, []string{"C1", "C2"}).
			Return([]domain.CustomerSale{
				{CustomerID: "C1", SaleDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(200)},
				{CustomerID: "C1", SaleDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("50.5")},
			}, nil)

		resp, err := f.service.List(context.Background(), 1, domain.CustomerFilters{Name: "a"})

		require.NoError(t, err)
		require.Len(t, resp.Customers, 2)

		first := resp.Customers[0]
		assert.Equal(t, 2, first.TotalSales)
		assert.True(t, decimal.RequireFromString("250.5").Equal(first.TotalAmount))
		assert.Equal(t, "B", first.MissingLetter)

		second := resp.Customers[1]
		assert.NotNil(t, second.Sales)
		assert.Empty(t, second.Sales)
		assert.True(t, second.TotalAmount.IsZero())
		assert.Equal(t, "A", second.MissingLetter)

		assert.Equal(t, domain.Pagination{Page: 1, Limit: 10, Total: 12, TotalPages: 2}, resp.Pagination)
	})

	t.Run("Limite acima do máximo é reduzido", func(t *testing.T) {
		f := newFixture(t)
		f.customers.EXPECT().List(gomock.Any(), 1, domain.CustomerFilters{Page: 2, Limit: 100}).Return(nil, 0, nil)
		f.sales.EXPECT().ListByCustomerIDs(gomock.Any(), 1, []string{}).Return(nil, nil)

		resp, err := f.service.List(context.Background(), 1, domain.CustomerFilters{Page: 2, Limit: 1000})

		require.NoError(t, err)
		assert.Empty(t, resp.Customers)
		assert.Equal(t, 100, resp.Pagination.Limit)
	})
}

func TestService_Get(t *testing.T) {
	t.Run("Cliente de outro dono não é encontrado", func(t *testing.T) {
		f := newFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), 2, "C1").Return(nil, nil)

		_, err := f.service.Get(context.Background(), 2, "C1")

		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

func TestService_Update(t *testing.T) {
	existing := func() *domain.Customer {
		return &domain.Customer{ID: "C1", OwnerID: 1, Name: "Ana", Email: "ana@example.com", Phone: strPtr("119")}
	}

	t.Run("Atualização parcial invalida relatórios", func(t *testing.T) {
		f := newFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), 1, "C1").Return(existing(), nil)
		f.customers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		customer, err := f.service.Update(context.Background(), 1, "C1", domain.UpdateCustomerRequest{
			Name:  strPtr("Ana Clara"),
			Phone: strPtr(""),
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana Clara", customer.Name)
		assert.Equal(t, "ana@example.com", customer.Email)
		assert.Nil(t, customer.Phone)
		assert.Equal(t, []int{1}, f.invalidator.owners)
	})

	t.Run("Cliente inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), 1, "C9").Return(nil, nil)

		_, err := f.service.Update(context.Background(), 1, "C9", domain.UpdateCustomerRequest{})

		assert.ErrorIs(t, err, ErrCustomerNotFound)
		assert.Empty(t, f.invalidator.owners)
	})

	t.Run("Nome vazio é rejeitado", func(t *testing.T) {
		f := newFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), 1, "C1").Return(existing(), nil)

		_, err := f.service.Update(context.Background(), 1, "C1", domain.UpdateCustomerRequest{Name: strPtr("  ")})

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Email de outro cliente", func(t *testing.T) {
		f := newFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), 1, "C1").Return(existing(), nil)
		f.customers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(repository.ErrUniqueViolation)

		_, err := f.service.Update(context.Background(), 1, "C1", domain.UpdateCustomerRequest{Email: strPtr("bruno@example.com")})

		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("Sucesso", func(t *testing.T) {
		f := newFixture(t)
		f.customers.EXPECT().Delete(gomock.Any(), 1, "C1").Return(true, nil)

		err := f.service.Delete(context.Background(), 1, "C1")

		assert.NoError(t, err)
		assert.Equal(t, []int{1}, f.invalidator.owners)
	})

	t.Run("Cliente inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.customers.EXPECT().Delete(gomock.Any(), 1, "C1").Return(false, nil)

		err := f.service.Delete(context.Background(), 1, "C1")

		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("Sem cache de relatórios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		customers := mocks.NewMockCustomerRepository(ctrl)
		service := NewService(customers, mocks.NewMockSaleRepository(ctrl), nil, config.Pagination{})
		customers.EXPECT().Delete(gomock.Any(), 1, "C1").Return(true, nil)

		assert.NoError(t, service.Delete(context.Background(), 1, "C1"))
	})
}
