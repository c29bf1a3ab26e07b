package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecomm-labs/commerce-service/internal/domain"
)

// ProductRepository defines persistence access for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	ListActive(ctx context.Context) ([]domain.Product, error)
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a Postgres-backed implementation.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (name, description, price, active)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Active,
	).Scan(&product.ID, &product.CreatedAt)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
        UPDATE products SET name=$1, description=$2, price=$3, active=$4
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Active,
		product.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const query = `
        SELECT id, name, description, price, created_at, active
        FROM products WHERE id=$1`

	var product domain.Product
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.CreatedAt,
		&product.Active,
	); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	const query = `
        SELECT id, name, description, price, created_at, active
        FROM products ORDER BY id`
	return r.list(ctx, query)
}

func (r *productRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	const query = `
        SELECT id, name, description, price, created_at, active
        FROM products WHERE active ORDER BY id`
	return r.list(ctx, query)
}

func (r *productRepository) list(ctx context.Context, query string) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.CreatedAt,
			&product.Active,
		); err != nil {
			return nil, err
		}
		result = append(result, product)
	}
	return result, rows.Err()
}
