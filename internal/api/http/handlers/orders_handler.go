package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ecomm-labs/commerce-service/internal/api/dto"
	"github.com/ecomm-labs/commerce-service/internal/domain"
	"github.com/ecomm-labs/commerce-service/internal/service"
	apperrors "github.com/ecomm-labs/commerce-service/pkg/util"
)

// OrdersHandler manages order endpoints.
type OrdersHandler struct {
	service *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{service: orderService}
}

// CreateOrder POST /api/orders/:userId. Body is a bare list of lines; an
// empty list is accepted and yields total 0.
func (h *OrdersHandler) CreateOrder(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}
	lines, err := parseOrderBody(c)
	if err != nil {
		return err
	}

	order, err := h.service.CreateOrder(c.UserContext(), userID, lines)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Order created successfully with ID: %d", order.ID)
	return c.Status(http.StatusCreated).JSON(dto.NewSuccess(http.StatusCreated, message, orderResponse(order)))
}

// ListOrders GET /api/orders. activeOnly defaults to true.
func (h *OrdersHandler) ListOrders(c *fiber.Ctx) error {
	activeOnly, err := parseActiveOnly(c, true)
	if err != nil {
		return err
	}

	var list []domain.Order
	if activeOnly {
		list, err = h.service.GetAllActiveOrders(c.UserContext())
	} else {
		list, err = h.service.GetAllOrders(c.UserContext())
	}
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Retrieved %d orders successfully", len(list))
	if activeOnly {
		message = fmt.Sprintf("Retrieved %d active orders successfully", len(list))
	}
	return c.JSON(dto.NewSuccess(http.StatusOK, message, orderResponses(list)))
}

// ListOrdersByUser GET /api/orders/user/:userId. activeOnly defaults to true.
func (h *OrdersHandler) ListOrdersByUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}
	activeOnly, err := parseActiveOnly(c, true)
	if err != nil {
		return err
	}

	var list []domain.Order
	if activeOnly {
		list, err = h.service.GetOrdersByUserIDActive(c.UserContext(), userID)
	} else {
		list, err = h.service.GetOrdersByUserID(c.UserContext(), userID)
	}
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Retrieved %d orders for user %d successfully", len(list), userID)
	return c.JSON(dto.NewSuccess(http.StatusOK, message, orderResponses(list)))
}

// GetOrder GET /api/orders/:id. Absence is translated to NotFound here; the
// service treats it as an absent value.
func (h *OrdersHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	order, err := h.service.GetOrderByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperrors.NewNotFound("Order", "id", id)
	}
	message := fmt.Sprintf("Order %d retrieved successfully", id)
	return c.JSON(dto.NewSuccess(http.StatusOK, message, orderResponse(order)))
}

// UpdateOrder PUT /api/orders/:id.
func (h *OrdersHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	lines, err := parseOrderBody(c)
	if err != nil {
		return err
	}

	order, err := h.service.UpdateOrder(c.UserContext(), id, lines)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Order %d updated successfully", id)
	return c.JSON(dto.NewSuccess(http.StatusOK, message, orderResponse(order)))
}

// DeleteOrder DELETE /api/orders/:id. Idempotent.
func (h *OrdersHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteOrder(c.UserContext(), id); err != nil {
		return err
	}
	message := fmt.Sprintf("Order %d has been successfully deactivated", id)
	return c.JSON(dto.NewMessage(http.StatusOK, message))
}

func parseOrderBody(c *fiber.Ctx) ([]service.OrderLineInput, error) {
	var req []dto.OrderLineRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError([]string{"body: invalid payload"})
	}

	var details []string
	for i, line := range req {
		if line.ProductID == 0 {
			details = append(details, fmt.Sprintf("details[%d].productId: must not be null", i))
		}
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError(details)
	}

	lines := make([]service.OrderLineInput, 0, len(req))
	for _, line := range req {
		lines = append(lines, service.OrderLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	return lines, nil
}
