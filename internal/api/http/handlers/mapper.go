package handlers

import (
	"github.com/ecomm-labs/commerce-service/internal/api/dto"
	"github.com/ecomm-labs/commerce-service/internal/domain"
)

// Pure entity -> response transforms. Order lines carry the snapshot taken at
// line-build time and never re-read the live product.

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		LastName:   user.LastName,
		Email:      user.Email,
		CreateDate: dto.Date(user.CreateDate),
		Active:     user.Active,
	}
}

func userResponses(users []domain.User) []dto.UserResponse {
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, userResponse(&users[i]))
	}
	return items
}

func productResponse(product *domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		CreatedAt:   dto.Timestamp(product.CreatedAt),
		Active:      product.Active,
	}
}

func productResponses(products []domain.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, productResponse(&products[i]))
	}
	return items
}

func orderResponse(order *domain.Order) dto.OrderResponse {
	details := make([]dto.OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		details = append(details, dto.OrderLineResponse{
			ProductID:       line.ProductID,
			ProductName:     line.ProductName,
			DescriptionSnap: line.DescriptionSnap,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
		})
	}
	return dto.OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		CreatedAt: dto.Timestamp(order.CreatedAt),
		Total:     order.Total,
		Active:    order.Active,
		Details:   details,
	}
}

func orderResponses(orders []domain.Order) []dto.OrderResponse {
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, orderResponse(&orders[i]))
	}
	return items
}
