package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type seedProduct struct {
	name        string
	description string
	price       float64
}

type seedUser struct {
	name     string
	lastName string
	email    string
}

var seedProducts = []seedProduct{
	{"Laptop Gamer ASUS", "Laptop con RTX 4060 y 16GB RAM", 28999.99},
	{"iPhone 15 Pro", "128GB, Titanio Azul", 24999.99},
	{"Audifonos Sony WH-1000XM5", "Cancelacion de ruido premium", 7499.99},
	{"Monitor LG UltraWide 34''", "Resolucion 3440x1440, HDR10", 8999.99},
	{"Teclado Mecanico Keychron K6", "Switches Red, inalambrico", 1799.99},
}

var seedUsers = []seedUser{
	{"Jorge", "Avila", "jorge@example.com"},
	{"Benjamin", "Lopez", "benjamin@example.com"},
	{"Jose", "Perez", "jose@example.com"},
}

// SeedData inserts sample products and users when the tables are empty.
func SeedData(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping seed data")
		return nil
	}

	var productCount int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&productCount); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if productCount == 0 {
		for _, p := range seedProducts {
			if _, err := pool.Exec(ctx,
				`INSERT INTO products (name, description, price, active) VALUES ($1,$2,$3,TRUE)`,
				p.name, p.description, p.price,
			); err != nil {
				return fmt.Errorf("seed product %q: %w", p.name, err)
			}
		}
		logger.Info("initial products added", zap.Int("count", len(seedProducts)))
	}

	var userCount int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if userCount == 0 {
		for _, u := range seedUsers {
			if _, err := pool.Exec(ctx,
				`INSERT INTO users (name, last_name, email, active) VALUES ($1,$2,$3,TRUE)`,
				u.name, u.lastName, u.email,
			); err != nil {
				return fmt.Errorf("seed user %q: %w", u.email, err)
			}
		}
		logger.Info("initial users added", zap.Int("count", len(seedUsers)))
	}

	return nil
}
