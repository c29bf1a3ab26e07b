package domain

import "time"

// Order aggregates purchase lines for a single user. Total is recomputed in
// full whenever the line set changes, never adjusted incrementally.
type Order struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
	Total     float64
	Active    bool
	Lines     []OrderLine
}

// OrderLine references a product and snapshots its name, description and unit
// price at the moment the line was built. Later changes to the product leave
// the snapshot untouched so historical orders keep displaying correctly.
type OrderLine struct {
	ID              int64
	OrderID         int64
	ProductID       int64
	ProductName     string
	DescriptionSnap string
	Quantity        int
	UnitPrice       float64
}

// Extension returns the line contribution to the order total.
func (l OrderLine) Extension() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
