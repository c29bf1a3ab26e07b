package dto

// UserRequest payload for create and update; every field is overwritten on
// update.
type UserRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Active   *bool  `json:"active"`
}

// UserResponse response shape.
type UserResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	CreateDate Date   `json:"createDate"`
	Active     bool   `json:"active"`
}
