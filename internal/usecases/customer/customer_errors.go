package customer

import (
	"errors"
	"fmt"
)

const emailConflictMessage = "Este email já está sendo usado por outro cliente"

var (
	ErrCustomerNotFound    = errors.New("cliente não encontrado")
	ErrEmailAlreadyUsed    = errors.New("email já cadastrado para este dono")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidEmail        = errors.New("email inválido")
	ErrInvalidBirthDate    = errors.New("data de nascimento inválida")
)

// CustomerError é um erro com contexto adicional para clientes
type CustomerError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CustomerID string // ID do cliente envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *CustomerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CustomerError) Unwrap() error {
	return e.Err
}

func NewCustomerError(err error, code string, details string) *CustomerError {
	return &CustomerError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCustomerErrorWithID(err error, code string, customerID string, details string) *CustomerError {
	return &CustomerError{
		Err:        err,
		Code:       code,
		CustomerID: customerID,
		Details:    details,
	}
}
