package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        string     `json:"id"`
	OwnerID   int        `json:"-"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone"`
	Address   *string    `json:"address"`
	BirthDate *time.Time `json:"birthDate"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CustomerSale é a visão resumida de uma venda dentro da listagem de clientes
type CustomerSale struct {
	CustomerID string          `json:"-"`
	SaleDate   time.Time       `json:"saleDate"`
	Amount     decimal.Decimal `json:"amount"`
}

type CustomerListItem struct {
	*Customer
	Sales         []CustomerSale  `json:"sales"`
	TotalSales    int             `json:"totalSales"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	MissingLetter string          `json:"missingLetter"`
}

type CustomerListResponse struct {
	Customers  []*CustomerListItem `json:"customers"`
	Pagination Pagination          `json:"pagination"`
}

type CreateCustomerRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	BirthDate *string `json:"birthDate"`
}

type UpdateCustomerRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	BirthDate *string `json:"birthDate"`
}

type CustomerFilters struct {
	Name  string
	Email string
	Page  int
	Limit int
}
