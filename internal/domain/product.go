package domain

import "time"

// Product is the catalog entry referenced by order lines.
// Price is nullable and unconstrained; the store accepts whatever the caller sends.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       *float64
	CreatedAt   time.Time
	Active      bool
}
