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

// UserService coordinates user lifecycle operations.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// UserInput describes the writable user fields.
type UserInput struct {
	Name     string
	LastName string
	Email    string
	Active   bool
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{users: users, dispatcher: dispatcher}
}

// FindAll returns every user, active or not.
func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}

// FindAllActive returns only users whose active flag is set.
func (s *UserService) FindAllActive(ctx context.Context) ([]domain.User, error) {
	return s.users.ListActive(ctx)
}

// FindByID fetches a single user or fails with NotFound.
func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User", "id", id)
		}
		return nil, err
	}
	return user, nil
}

// Create persists a new user. Email uniqueness is left to the storage
// constraint, matching the source behavior.
func (s *UserService) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	user := &domain.User{
		Name:     input.Name,
		LastName: input.LastName,
		Email:    input.Email,
		Active:   input.Active,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update overwrites email, name, last name and active flag. ID and creation
// date stay untouched.
func (s *UserService) Update(ctx context.Context, id int64, input UserInput) (*domain.User, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.LastName = input.LastName
	existing.Email = input.Email
	existing.Active = input.Active

	if err := s.users.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete soft-deletes a user. Deleting an already-inactive user succeeds and
// leaves the flag false.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	user.Active = false
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventUserDeactivated,
		Payload: events.ResourceDeactivatedPayload{Resource: "User", ID: id},
	})
	return nil
}
