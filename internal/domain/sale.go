package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID           string          `json:"id"`
	OwnerID      int             `json:"-"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	SaleDate     time.Time       `json:"saleDate"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type SaleListResponse struct {
	Sales      []*Sale    `json:"sales"`
	Pagination Pagination `json:"pagination"`
}

type CreateSaleRequest struct {
	CustomerID string           `json:"customerId"`
	Amount     *decimal.Decimal `json:"amount"`
	SaleDate   string           `json:"saleDate"`
}

type UpdateSaleRequest struct {
	CustomerID *string          `json:"customerId"`
	Amount     *decimal.Decimal `json:"amount"`
	SaleDate   *string          `json:"saleDate"`
}

type SaleFilters struct {
	CustomerID string
	Page       int
	Limit      int
}

// SaleDateGroup é uma linha do agrupamento de vendas por data
type SaleDateGroup struct {
	Date  time.Time
	Count int
	Sum   decimal.NullDecimal
}

// CustomerSaleGroup é uma linha do agrupamento de vendas por cliente
type CustomerSaleGroup struct {
	CustomerID string
	Count      int
	Sum        decimal.NullDecimal
	Avg        decimal.NullDecimal
}

// SaleDateCustomer é um par distinto (data, cliente) com pelo menos uma venda
type SaleDateCustomer struct {
	Date       time.Time
	CustomerID string
}
