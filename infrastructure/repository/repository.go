// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"errors"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
)

//go:generate mockgen -source=user.go -destination=mocks/user_mock.go -package=mocks
//go:generate mockgen -source=customer.go -destination=mocks/customer_mock.go -package=mocks
//go:generate mockgen -source=sale.go -destination=mocks/sale_mock.go -package=mocks
//go:generate mockgen -source=report_snapshot.go -destination=mocks/report_snapshot_mock.go -package=mocks

const uniqueViolationCode = "23505"

// ErrUniqueViolation indica violação de uma constraint UNIQUE (ex.: email do cliente por dono)
var ErrUniqueViolation = errors.New("registro duplicado")

var (
	psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	json = jsoniter.ConfigCompatibleWithStandardLibrary
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
