package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ecomm-labs/commerce-service/internal/domain"
)

// In-memory repository fakes backing the service tests. They mimic the
// Postgres implementations closely enough that not-found surfaces as
// pgx.ErrNoRows, the signal the services translate.

type memoryUserRepo struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	nextID int64
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (r *memoryUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	user.CreateDate = time.Now().Truncate(24 * time.Hour)
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepo) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *memoryUserRepo) ListAll(ctx context.Context) ([]domain.User, error) {
	return r.list(func(domain.User) bool { return true }), nil
}

func (r *memoryUserRepo) ListActive(ctx context.Context) ([]domain.User, error) {
	return r.list(func(u domain.User) bool { return u.Active }), nil
}

func (r *memoryUserRepo) list(keep func(domain.User) bool) []domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []domain.User{}
	for _, user := range r.users {
		if keep(*user) {
			result = append(result, *user)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

type memoryProductRepo struct {
	mu       sync.Mutex
	products map[int64]*domain.Product
	nextID   int64
}

func newMemoryProductRepo() *memoryProductRepo {
	return &memoryProductRepo{products: make(map[int64]*domain.Product), nextID: 1}
}

func (r *memoryProductRepo) Create(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = r.nextID
	r.nextID++
	product.CreatedAt = time.Now()
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *memoryProductRepo) Update(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *memoryProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *product
	return &clone, nil
}

func (r *memoryProductRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	return r.list(func(domain.Product) bool { return true }), nil
}

func (r *memoryProductRepo) ListActive(ctx context.Context) ([]domain.Product, error) {
	return r.list(func(p domain.Product) bool { return p.Active }), nil
}

func (r *memoryProductRepo) list(keep func(domain.Product) bool) []domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []domain.Product{}
	for _, product := range r.products {
		if keep(*product) {
			result = append(result, *product)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

type memoryOrderRepo struct {
	mu     sync.Mutex
	orders map[int64]*domain.Order
	nextID int64
	lineID int64
}

func newMemoryOrderRepo() *memoryOrderRepo {
	return &memoryOrderRepo{orders: make(map[int64]*domain.Order), nextID: 1}
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.Lines = append([]domain.OrderLine(nil), order.Lines...)
	return &clone
}

func (r *memoryOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = r.nextID
	r.nextID++
	order.CreatedAt = time.Now()
	for i := range order.Lines {
		r.lineID++
		order.Lines[i].ID = r.lineID
		order.Lines[i].OrderID = order.ID
	}
	r.orders[order.ID] = cloneOrder(order)
	return nil
}

func (r *memoryOrderRepo) ReplaceLines(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[order.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	for i := range order.Lines {
		r.lineID++
		order.Lines[i].ID = r.lineID
		order.Lines[i].OrderID = order.ID
	}
	stored.Total = order.Total
	stored.Lines = append([]domain.OrderLine(nil), order.Lines...)
	return nil
}

func (r *memoryOrderRepo) SetActive(ctx context.Context, id int64, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[id]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Active = active
	return nil
}

func (r *memoryOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return cloneOrder(order), nil
}

func (r *memoryOrderRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	return r.list(func(domain.Order) bool { return true }), nil
}

func (r *memoryOrderRepo) ListActive(ctx context.Context) ([]domain.Order, error) {
	return r.list(func(o domain.Order) bool { return o.Active }), nil
}

func (r *memoryOrderRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return r.list(func(o domain.Order) bool { return o.UserID == userID }), nil
}

func (r *memoryOrderRepo) ListActiveByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return r.list(func(o domain.Order) bool { return o.UserID == userID && o.Active }), nil
}

func (r *memoryOrderRepo) list(keep func(domain.Order) bool) []domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []domain.Order{}
	for _, order := range r.orders {
		if keep(*order) {
			result = append(result, *cloneOrder(order))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
