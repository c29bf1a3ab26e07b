package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ecomm-labs/commerce-service/internal/api/dto"
	"github.com/ecomm-labs/commerce-service/internal/domain"
	"github.com/ecomm-labs/commerce-service/internal/service"
	apperrors "github.com/ecomm-labs/commerce-service/pkg/util"
)

// UsersHandler manages user endpoints.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// ListUsers GET /api/user. activeOnly defaults to false.
func (h *UsersHandler) ListUsers(c *fiber.Ctx) error {
	activeOnly, err := parseActiveOnly(c, false)
	if err != nil {
		return err
	}

	var list []domain.User
	if activeOnly {
		list, err = h.service.FindAllActive(c.UserContext())
	} else {
		list, err = h.service.FindAll(c.UserContext())
	}
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Retrieved %d users successfully", len(list))
	if activeOnly {
		message = fmt.Sprintf("Retrieved %d active users successfully", len(list))
	}
	return c.JSON(dto.NewSuccess(http.StatusOK, message, userResponses(list)))
}

// GetUser GET /api/user/:id.
func (h *UsersHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	user, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("User %d retrieved successfully", id)
	return c.JSON(dto.NewSuccess(http.StatusOK, message, userResponse(user)))
}

// CreateUser POST /api/user.
func (h *UsersHandler) CreateUser(c *fiber.Ctx) error {
	input, err := parseUserBody(c)
	if err != nil {
		return err
	}
	user, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("User created successfully with ID: %d", user.ID)
	return c.Status(http.StatusCreated).JSON(dto.NewSuccess(http.StatusCreated, message, userResponse(user)))
}

// UpdateUser PUT /api/user/:id.
func (h *UsersHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	input, err := parseUserBody(c)
	if err != nil {
		return err
	}
	user, err := h.service.Update(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("User %d updated successfully", id)
	return c.JSON(dto.NewSuccess(http.StatusOK, message, userResponse(user)))
}

// DeleteUser DELETE /api/user/:id.
func (h *UsersHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	message := fmt.Sprintf("User %d has been successfully deactivated", id)
	return c.JSON(dto.NewMessage(http.StatusOK, message))
}

func parseUserBody(c *fiber.Ctx) (service.UserInput, error) {
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return service.UserInput{}, apperrors.NewValidationError([]string{"body: invalid payload"})
	}

	var details []string
	if strings.TrimSpace(req.Name) == "" {
		details = append(details, "name: must not be blank")
	}
	if strings.TrimSpace(req.LastName) == "" {
		details = append(details, "lastName: must not be blank")
	}
	if strings.TrimSpace(req.Email) == "" {
		details = append(details, "email: must not be blank")
	}
	if len(details) > 0 {
		return service.UserInput{}, apperrors.NewValidationError(details)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return service.UserInput{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Active:   active,
	}, nil
}
