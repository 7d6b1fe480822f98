package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/toy-store-api/infrastructure/database/postgres"
	"github.com/vfg2006/toy-store-api/internal/domain"
)

const (
	salesTable = "sales"
	salesAlias = "sales s"
)

var saleColumns = []string{
	"s.id",
	"s.owner_id",
	"s.customer_id",
	"COALESCE(c.name, '')",
	"s.amount",
	"s.sale_date",
	"s.created_at",
	"s.updated_at",
}

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	GetByID(ctx context.Context, ownerID int, saleID string) (*domain.Sale, error)
	List(ctx context.Context, ownerID int, filters domain.SaleFilters) ([]*domain.Sale, int, error)
	Update(ctx context.Context, sale *domain.Sale) error
	Delete(ctx context.Context, ownerID int, saleID string) (bool, error)
	ListByCustomerIDs(ctx context.Context, ownerID int, customerIDs []string) ([]domain.CustomerSale, error)

	ListSalesGroupedByDate(ctx context.Context, ownerID int) ([]domain.SaleDateGroup, error)
	ListSalesGroupedByCustomer(ctx context.Context, ownerID int) ([]domain.CustomerSaleGroup, error)
	ListSaleDatesWithCustomer(ctx context.Context, ownerID int) ([]domain.SaleDateCustomer, error)
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	query, args, err := psql.
		Insert(salesTable).
		Columns("id", "owner_id", "customer_id", "amount", "sale_date").
		Values(sale.ID, sale.OwnerID, sale.CustomerID, sale.Amount, sale.SaleDate).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao inserir venda: %w", err)
	}

	return nil
}

func (r *saleRepository) GetByID(ctx context.Context, ownerID int, saleID string) (*domain.Sale, error) {
	query, args, err := psql.
		Select(saleColumns...).
		From(salesAlias).
		LeftJoin("customers c ON c.id = s.customer_id").
		Where(squirrel.Eq{"s.id": saleID, "s.owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale, err := scanSale(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	return sale, nil
}

func (r *saleRepository) List(ctx context.Context, ownerID int, filters domain.SaleFilters) ([]*domain.Sale, int, error) {
	where := squirrel.Eq{"s.owner_id": ownerID}
	if filters.CustomerID != "" {
		where["s.customer_id"] = filters.CustomerID
	}

	countQuery, countArgs, err := psql.
		Select("COUNT(*)").
		From(salesAlias).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	query, args, err := psql.
		Select(saleColumns...).
		From(salesAlias).
		LeftJoin("customers c ON c.id = s.customer_id").
		Where(where).
		OrderBy("s.sale_date DESC", "s.created_at DESC").
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

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, total, nil
}

func (r *saleRepository) Update(ctx context.Context, sale *domain.Sale) error {
	query, args, err := psql.
		Update(salesTable).
		Set("customer_id", sale.CustomerID).
		Set("amount", sale.Amount).
		Set("sale_date", sale.SaleDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sale.ID, "owner_id": sale.OwnerID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&sale.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao atualizar venda: %w", err)
	}

	return nil
}

func (r *saleRepository) Delete(ctx context.Context, ownerID int, saleID string) (bool, error) {
	query, args, err := psql.
		Delete(salesTable).
		Where(squirrel.Eq{"id": saleID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover venda: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// ListByCustomerIDs devolve as vendas dos clientes informados, da mais recente para a mais antiga
func (r *saleRepository) ListByCustomerIDs(ctx context.Context, ownerID int, customerIDs []string) ([]domain.CustomerSale, error) {
	if len(customerIDs) == 0 {
		return []domain.CustomerSale{}, nil
	}

	query, args, err := psql.
		Select("customer_id", "sale_date", "amount").
		From(salesTable).
		Where(squirrel.Eq{"owner_id": ownerID, "customer_id": customerIDs}).
		OrderBy("sale_date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.CustomerSale, 0)
	for rows.Next() {
		var sale domain.CustomerSale
		if err := rows.Scan(&sale.CustomerID, &sale.SaleDate, &sale.Amount); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

// ListSalesGroupedByDate agrupa as vendas do dono por sale_date, da data mais recente para a mais antiga
func (r *saleRepository) ListSalesGroupedByDate(ctx context.Context, ownerID int) ([]domain.SaleDateGroup, error) {
	query, args, err := psql.
		Select("sale_date", "COUNT(id)", "SUM(amount)").
		From(salesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		GroupBy("sale_date").
		OrderBy("sale_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar vendas por data: %w", err)
	}
	defer rows.Close()

	groups := make([]domain.SaleDateGroup, 0)
	for rows.Next() {
		var group domain.SaleDateGroup
		if err := rows.Scan(&group.Date, &group.Count, &group.Sum); err != nil {
			return nil, fmt.Errorf("erro ao escanear agrupamento: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return groups, nil
}

// ListSalesGroupedByCustomer agrupa por cliente na ordem da primeira venda registrada de cada um
func (r *saleRepository) ListSalesGroupedByCustomer(ctx context.Context, ownerID int) ([]domain.CustomerSaleGroup, error) {
	query, args, err := psql.
		Select("customer_id", "COUNT(id)", "SUM(amount)", "AVG(amount)").
		From(salesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		GroupBy("customer_id").
		OrderBy("MIN(created_at) ASC", "customer_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar vendas por cliente: %w", err)
	}
	defer rows.Close()

	groups := make([]domain.CustomerSaleGroup, 0)
	for rows.Next() {
		var group domain.CustomerSaleGroup
		if err := rows.Scan(&group.CustomerID, &group.Count, &group.Sum, &group.Avg); err != nil {
			return nil, fmt.Errorf("erro ao escanear agrupamento: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return groups, nil
}

// ListSaleDatesWithCustomer lista os pares distintos (data, cliente) com venda
func (r *saleRepository) ListSaleDatesWithCustomer(ctx context.Context, ownerID int) ([]domain.SaleDateCustomer, error) {
	query, args, err := psql.
		Select("sale_date", "customer_id").
		Distinct().
		From(salesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("sale_date DESC", "customer_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar datas de venda: %w", err)
	}
	defer rows.Close()

	pairs := make([]domain.SaleDateCustomer, 0)
	for rows.Next() {
		var pair domain.SaleDateCustomer
		if err := rows.Scan(&pair.Date, &pair.CustomerID); err != nil {
			return nil, fmt.Errorf("erro ao escanear data de venda: %w", err)
		}
		pairs = append(pairs, pair)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return pairs, nil
}

func scanSale(row scanner) (*domain.Sale, error) {
	sale := &domain.Sale{}
	err := row.Scan(
		&sale.ID,
		&sale.OwnerID,
		&sale.CustomerID,
		&sale.CustomerName,
		&sale.Amount,
		&sale.SaleDate,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return sale, nil
}
