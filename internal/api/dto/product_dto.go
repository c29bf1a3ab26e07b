package dto

// ProductRequest payload for create and update. Price is optional and not
// validated against null or negative values.
type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Active      *bool    `json:"active"`
}

// ProductResponse response shape.
type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       *float64  `json:"price"`
	Description string    `json:"description"`
	CreatedAt   Timestamp `json:"created_at"`
	Active      bool      `json:"active"`
}
