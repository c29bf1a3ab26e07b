package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecomm-labs/commerce-service/internal/domain"
)

// UserRepository defines persistence access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	ListActive(ctx context.Context) ([]domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (name, last_name, email, active)
        VALUES ($1, $2, $3, $4)
        RETURNING id, create_date`

	return r.pool.QueryRow(ctx, query,
		user.Name,
		user.LastName,
		user.Email,
		user.Active,
	).Scan(&user.ID, &user.CreateDate)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET name=$1, last_name=$2, email=$3, active=$4
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		user.Name,
		user.LastName,
		user.Email,
		user.Active,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
        SELECT id, name, last_name, email, create_date, active
        FROM users WHERE id=$1`

	var user domain.User
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.LastName,
		&user.Email,
		&user.CreateDate,
		&user.Active,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id, name, last_name, email, create_date, active
        FROM users ORDER BY id`
	return r.list(ctx, query)
}

func (r *userRepository) ListActive(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id, name, last_name, email, create_date, active
        FROM users WHERE active ORDER BY id`
	return r.list(ctx, query)
}

func (r *userRepository) list(ctx context.Context, query string) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.LastName,
			&user.Email,
			&user.CreateDate,
			&user.Active,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}
