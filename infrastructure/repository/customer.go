package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/toy-store-api/infrastructure/database/postgres"
	"github.com/vfg2006/toy-store-api/internal/domain"
)

const customersTable = "customers"

var customerColumns = []string{
	"id",
	"owner_id",
	"name",
	"email",
	"phone",
	"address",
	"birth_date",
	"created_at",
	"updated_at",
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, ownerID int, customerID string) (*domain.Customer, error)
	List(ctx context.Context, ownerID int, filters domain.CustomerFilters) ([]*domain.Customer, int, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, ownerID int, customerID string) (bool, error)
	Count(ctx context.Context, ownerID int) (int, error)
}

type customerRepository struct {
	conn postgres.Queryer
}

func NewCustomerRepository(conn postgres.Queryer) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query, args, err := psql.
		Insert(customersTable).
		Columns("id", "owner_id", "name", "email", "phone", "address", "birth_date").
		Values(
			customer.ID,
			customer.OwnerID,
			customer.Name,
			customer.Email,
			customer.Phone,
			customer.Address,
			customer.BirthDate,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUniqueViolation
		}
		return fmt.Errorf("erro ao inserir cliente: %w", err)
	}

	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, ownerID int, customerID string) (*domain.Customer, error) {
	query, args, err := psql.
		Select(customerColumns...).
		From(customersTable).
		Where(squirrel.Eq{"id": customerID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	customer, err := scanCustomer(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return customer, nil
}

// List devolve a página pedida e o total de clientes que atendem aos filtros
func (r *customerRepository) List(ctx context.Context, ownerID int, filters domain.CustomerFilters) ([]*domain.Customer, int, error) {
	where := squirrel.And{squirrel.Eq{"owner_id": ownerID}}
	if filters.Name != "" {
		where = append(where, squirrel.ILike{"name": "%" + filters.Name + "%"})
	}
	if filters.Email != "" {
		where = append(where, squirrel.ILike{"email": "%" + filters.Email + "%"})
	}

	countQuery, countArgs, err := psql.
		Select("COUNT(*)").
		From(customersTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	query, args, err := psql.
		Select(customerColumns...).
		From(customersTable).
		Where(where).
		OrderBy("created_at DESC", "id ASC").
		Limit(uint64(filters.Limit)).
		Offset(uint64(domain.Offset(filters.Page, filters.Limit))).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, total, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	query, args, err := psql.
		Update(customersTable).
		Set("name", customer.Name).
		Set("email", customer.Email).
		Set("phone", customer.Phone).
		Set("address", customer.Address).
		Set("birth_date", customer.BirthDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customer.ID, "owner_id": customer.OwnerID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&customer.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUniqueViolation
		}
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	return nil
}

// Delete remove o cliente; as vendas dele são removidas em cascata pelo banco
func (r *customerRepository) Delete(ctx context.Context, ownerID int, customerID string) (bool, error) {
	query, args, err := psql.
		Delete(customersTable).
		Where(squirrel.Eq{"id": customerID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover cliente: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *customerRepository) Count(ctx context.Context, ownerID int) (int, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From(customersTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return total, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row scanner) (*domain.Customer, error) {
	customer := &domain.Customer{}
	err := row.Scan(
		&customer.ID,
		&customer.OwnerID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&customer.BirthDate,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return customer, nil
}
