package domain

import "time"

// User is the domain model for customers who place orders.
// Users are never hard-deleted; Active is flipped to false instead.
type User struct {
	ID         int64
	Name       string
	LastName   string
	Email      string
	CreateDate time.Time
	Active     bool
}
