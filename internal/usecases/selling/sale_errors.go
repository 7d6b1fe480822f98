package selling

import (
	"errors"
	"fmt"
)

var (
	ErrSaleNotFound        = errors.New("venda não encontrada")
	ErrCustomerNotFound    = errors.New("cliente não encontrado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidAmount       = errors.New("valor da venda inválido")
	ErrInvalidSaleDate     = errors.New("data da venda inválida")
)

// SaleError é um erro com contexto adicional para vendas
type SaleError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	SaleID  string // ID da venda envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SaleError) Unwrap() error {
	return e.Err
}

func NewSaleError(err error, code string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSaleErrorWithID(err error, code string, saleID string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		SaleID:  saleID,
		Details: details,
	}
}
