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

// ProductsHandler manages catalog endpoints.
type ProductsHandler struct {
	service *service.ProductService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(productService *service.ProductService) *ProductsHandler {
	return &ProductsHandler{service: productService}
}

// ListProducts GET /api/products. activeOnly defaults to true.
func (h *ProductsHandler) ListProducts(c *fiber.Ctx) error {
	activeOnly, err := parseActiveOnly(c, true)
	if err != nil {
		return err
	}

	var list []domain.Product
	if activeOnly {
		list, err = h.service.FindAllActive(c.UserContext())
	} else {
		list, err = h.service.FindAll(c.UserContext())
	}
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Retrieved %d products successfully", len(list))
	if activeOnly {
		message = fmt.Sprintf("Retrieved %d active products successfully", len(list))
	}
	return c.JSON(dto.NewSuccess(http.StatusOK, message, productResponses(list)))
}

// GetProduct GET /api/products/:id.
func (h *ProductsHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	product, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Product %d retrieved successfully", id)
	return c.JSON(dto.NewSuccess(http.StatusOK, message, productResponse(product)))
}

// CreateProduct POST /api/products.
func (h *ProductsHandler) CreateProduct(c *fiber.Ctx) error {
	input, err := parseProductBody(c)
	if err != nil {
		return err
	}
	product, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Product created successfully with ID: %d", product.ID)
	return c.Status(http.StatusCreated).JSON(dto.NewSuccess(http.StatusCreated, message, productResponse(product)))
}

// UpdateProduct PUT /api/products/:id.
func (h *ProductsHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	input, err := parseProductBody(c)
	if err != nil {
		return err
	}
	product, err := h.service.Update(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Product %d updated successfully", id)
	return c.JSON(dto.NewSuccess(http.StatusOK, message, productResponse(product)))
}

// DeleteProduct DELETE /api/products/:id.
func (h *ProductsHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	message := fmt.Sprintf("Product %d has been successfully deactivated", id)
	return c.JSON(dto.NewMessage(http.StatusOK, message))
}

func parseProductBody(c *fiber.Ctx) (service.ProductInput, error) {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return service.ProductInput{}, apperrors.NewValidationError([]string{"body: invalid payload"})
	}

	if strings.TrimSpace(req.Name) == "" {
		return service.ProductInput{}, apperrors.NewValidationError([]string{"name: must not be blank"})
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      active,
	}, nil
}
