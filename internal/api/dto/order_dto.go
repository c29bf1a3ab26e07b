package dto

// OrderLineRequest is one requested line; create and update bodies are bare
// lists of these.
type OrderLineRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderResponse response shape.
type OrderResponse struct {
	ID        int64               `json:"id"`
	UserID    int64               `json:"userId"`
	CreatedAt Timestamp           `json:"createdAt"`
	Total     float64             `json:"total"`
	Active    bool                `json:"active"`
	Details   []OrderLineResponse `json:"details"`
}

// OrderLineResponse carries the snapshot taken at line-build time; the live
// product is never re-read.
type OrderLineResponse struct {
	ProductID       int64   `json:"productId"`
	ProductName     string  `json:"productName"`
	DescriptionSnap string  `json:"descriptionSnap"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
}
