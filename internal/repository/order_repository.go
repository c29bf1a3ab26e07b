package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecomm-labs/commerce-service/internal/domain"
)

// OrderRepository encapsulates order persistence. Mutations that touch the
// line set run inside a single transaction so the order row and its lines
// change atomically.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	ReplaceLines(ctx context.Context, order *domain.Order) error
	SetActive(ctx context.Context, id int64, active bool) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	ListActive(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	ListActiveByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const orderQuery = `
        INSERT INTO orders (user_id, total, active)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	if err := tx.QueryRow(ctx, orderQuery,
		order.UserID,
		order.Total,
		order.Active,
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	if err := insertLines(ctx, tx, order); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) ReplaceLines(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const orderQuery = `UPDATE orders SET total=$1 WHERE id=$2`
	cmd, err := tx.Exec(ctx, orderQuery, order.Total, order.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_lines WHERE order_id=$1`, order.ID); err != nil {
		return err
	}
	if err := insertLines(ctx, tx, order); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) SetActive(ctx context.Context, id int64, active bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET active=$1 WHERE id=$2`, active, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func insertLines(ctx context.Context, tx pgx.Tx, order *domain.Order) error {
	const lineQuery = `
        INSERT INTO order_lines (order_id, product_id, product_name, description_snap, quantity, unit_price)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id`
	for i := range order.Lines {
		line := &order.Lines[i]
		line.OrderID = order.ID
		if err := tx.QueryRow(ctx, lineQuery,
			line.OrderID,
			line.ProductID,
			line.ProductName,
			line.DescriptionSnap,
			line.Quantity,
			line.UnitPrice,
		).Scan(&line.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const query = `
        SELECT id, user_id, created_at, total, active
        FROM orders WHERE id=$1`

	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.CreatedAt,
		&order.Total,
		&order.Active,
	); err != nil {
		return nil, err
	}

	lines, err := r.linesByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines
	return &order, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	const query = `
        SELECT id, user_id, created_at, total, active
        FROM orders ORDER BY id`
	return r.list(ctx, query)
}

func (r *orderRepository) ListActive(ctx context.Context) ([]domain.Order, error) {
	const query = `
        SELECT id, user_id, created_at, total, active
        FROM orders WHERE active ORDER BY id`
	return r.list(ctx, query)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	const query = `
        SELECT id, user_id, created_at, total, active
        FROM orders WHERE user_id=$1 ORDER BY id`
	return r.list(ctx, query, userID)
}

func (r *orderRepository) ListActiveByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	const query = `
        SELECT id, user_id, created_at, total, active
        FROM orders WHERE user_id=$1 AND active ORDER BY id`
	return r.list(ctx, query, userID)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		lines, err := r.linesByOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}
	return orders, nil
}

func (r *orderRepository) linesByOrder(ctx context.Context, orderID int64) ([]domain.OrderLine, error) {
	const query = `
        SELECT id, order_id, product_id, product_name, description_snap, quantity, unit_price
        FROM order_lines WHERE order_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.OrderLine
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.ProductID,
			&line.ProductName,
			&line.DescriptionSnap,
			&line.Quantity,
			&line.UnitPrice,
		); err != nil {
			return nil, err
		}
		result = append(result, line)
	}
	return result, rows.Err()
}

func scanOrders(rows pgx.Rows) ([]domain.Order, error) {
	var result []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.CreatedAt,
			&order.Total,
			&order.Active,
		); err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, rows.Err()
}
