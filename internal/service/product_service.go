package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ecomm-labs/commerce-service/internal/domain"
	"github.com/ecomm-labs/commerce-service/internal/events"
	"github.com/ecomm-labs/commerce-service/internal/repository"
	apperrors "github.com/ecomm-labs/commerce-service/pkg/util"
)

// ProductService coordinates catalog product operations.
type ProductService struct {
	products   repository.ProductRepository
	dispatcher events.Dispatcher
}

// ProductInput describes the writable product fields. Price stays optional
// and unvalidated, as in the source system.
type ProductInput struct {
	Name        string
	Description string
	Price       *float64
	Active      bool
}

// NewProductService constructs the service.
func NewProductService(products repository.ProductRepository, dispatcher events.Dispatcher) *ProductService {
	return &ProductService{products: products, dispatcher: dispatcher}
}

// FindAll returns every product, active or not.
func (s *ProductService) FindAll(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListAll(ctx)
}

// FindAllActive returns only products whose active flag is set.
func (s *ProductService) FindAllActive(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListActive(ctx)
}

// FindByID fetches a single product or fails with NotFound.
func (s *ProductService) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Product", "id", id)
		}
		return nil, err
	}
	return product, nil
}

// Create persists a new product.
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Active:      input.Active,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update overwrites name, description, price and active flag.
func (s *ProductService) Update(ctx context.Context, id int64, input ProductInput) (*domain.Product, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = input.Price
	existing.Active = input.Active

	if err := s.products.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete soft-deletes a product. Order lines that snapshotted this product
// are unaffected.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	product, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	product.Active = false
	if err := s.products.Update(ctx, product); err != nil {
		return err
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventProductDeactivated,
		Payload: events.ResourceDeactivatedPayload{Resource: "Product", ID: id},
	})
	return nil
}
