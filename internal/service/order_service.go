package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ecomm-labs/commerce-service/internal/domain"
	"github.com/ecomm-labs/commerce-service/internal/events"
	"github.com/ecomm-labs/commerce-service/internal/repository"
	apperrors "github.com/ecomm-labs/commerce-service/pkg/util"
)

// OrderService coordinates order workflows: line snapshotting, total
// computation and the order state machine (active -> inactive, no way back).
type OrderService struct {
	orders     repository.OrderRepository
	products   repository.ProductRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// OrderDependencies bundles repositories for the order service.
type OrderDependencies struct {
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
}

// OrderLineInput describes one requested order line.
type OrderLineInput struct {
	ProductID int64
	Quantity  int
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:     deps.OrderRepo,
		products:   deps.ProductRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateOrder builds an order for the user, snapshotting product name,
// description and unit price into each line and accumulating the total as
// a running sum. An empty line list is accepted and yields total 0.
func (s *OrderService) CreateOrder(ctx context.Context, userID int64, lines []OrderLineInput) (*domain.Order, error) {
	user, err := s.ValidateUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	built, total, err := s.buildLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID: user.ID,
		Total:  total,
		Active: true,
		Lines:  built,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type: events.EventOrderCreated,
		Payload: events.OrderCreatedPayload{
			OrderID:   order.ID,
			UserID:    order.UserID,
			Total:     order.Total,
			LineCount: len(order.Lines),
		},
	})
	return order, nil
}

// GetOrderByID returns the order if present and (nil, nil) when absent; the
// caller decides whether absence is an error.
func (s *OrderService) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return order, nil
}

// GetAllOrders returns every order, active or not.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListAll(ctx)
}

// GetAllActiveOrders returns only orders whose active flag is set.
func (s *OrderService) GetAllActiveOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListActive(ctx)
}

// GetOrdersByUserID lists all orders of a user, validating the user first.
func (s *OrderService) GetOrdersByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	if _, err := s.ValidateUserID(ctx, userID); err != nil {
		return nil, err
	}
	return s.orders.ListByUser(ctx, userID)
}

// GetOrdersByUserIDActive lists the active orders of a user, validating the
// user first.
func (s *OrderService) GetOrdersByUserIDActive(ctx context.Context, userID int64) ([]domain.Order, error) {
	user, err := s.ValidateUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.orders.ListActiveByUser(ctx, user.ID)
}

// UpdateOrder discards the existing line set and rebuilds it from the request
// exactly the way CreateOrder does, recomputing the total from scratch.
// Inactive orders reject updates.
func (s *OrderService) UpdateOrder(ctx context.Context, id int64, lines []OrderLineInput) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Order", "id", id)
		}
		return nil, err
	}
	if !order.Active {
		return nil, apperrors.NewInactiveResource("Order", id)
	}

	built, total, err := s.buildLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	oldTotal := order.Total
	order.Lines = built
	order.Total = total
	if err := s.orders.ReplaceLines(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type: events.EventOrderUpdated,
		Payload: events.OrderUpdatedPayload{
			OrderID:   order.ID,
			OldTotal:  oldTotal,
			NewTotal:  order.Total,
			LineCount: len(order.Lines),
		},
	})
	return order, nil
}

// DeleteOrder soft-deletes an order. Deleting an already-inactive order
// succeeds silently.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Order", "id", id)
		}
		return err
	}

	if err := s.orders.SetActive(ctx, order.ID, false); err != nil {
		return err
	}
	s.publish(ctx, events.Event{
		Type: events.EventOrderDeactivated,
		Payload: events.OrderDeactivatedPayload{
			OrderID: order.ID,
			UserID:  order.UserID,
		},
	})
	return nil
}

// ValidateUserID fails with NotFound when the user does not exist. Shared by
// every order operation scoped to a user.
func (s *OrderService) ValidateUserID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User", "id", userID)
		}
		return nil, err
	}
	return user, nil
}

func (s *OrderService) buildLines(ctx context.Context, lines []OrderLineInput) ([]domain.OrderLine, float64, error) {
	built := make([]domain.OrderLine, 0, len(lines))
	var total float64

	for _, req := range lines {
		product, err := s.products.GetByID(ctx, req.ProductID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, 0, apperrors.NewNotFound("Product", "id", req.ProductID)
			}
			return nil, 0, err
		}

		// A product without a price contributes 0 to the total.
		var unitPrice float64
		if product.Price != nil {
			unitPrice = *product.Price
		}

		line := domain.OrderLine{
			ProductID:       product.ID,
			ProductName:     product.Name,
			DescriptionSnap: product.Description,
			Quantity:        req.Quantity,
			UnitPrice:       unitPrice,
		}
		total += line.Extension()
		built = append(built, line)
	}

	return built, total, nil
}

func (s *OrderService) publish(ctx context.Context, event events.Event) {
	publishEvent(ctx, s.dispatcher, event)
}

func publishEvent(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}
