package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecomm-labs/commerce-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Users    *handlers.UsersHandler
	Products *handlers.ProductsHandler
	Orders   *handlers.OrdersHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	api := app.Group("/api")

	users := api.Group("/user")
	users.Post("/", cfg.Users.CreateUser)
	users.Get("/", cfg.Users.ListUsers)
	users.Get("/:id", cfg.Users.GetUser)
	users.Put("/:id", cfg.Users.UpdateUser)
	users.Delete("/:id", cfg.Users.DeleteUser)

	products := api.Group("/products")
	products.Post("/", cfg.Products.CreateProduct)
	products.Get("/", cfg.Products.ListProducts)
	products.Get("/:id", cfg.Products.GetProduct)
	products.Put("/:id", cfg.Products.UpdateProduct)
	products.Delete("/:id", cfg.Products.DeleteProduct)

	orders := api.Group("/orders")
	orders.Get("/", cfg.Orders.ListOrders)
	orders.Get("/user/:userId", cfg.Orders.ListOrdersByUser)
	orders.Post("/:userId", cfg.Orders.CreateOrder)
	orders.Get("/:id", cfg.Orders.GetOrder)
	orders.Put("/:id", cfg.Orders.UpdateOrder)
	orders.Delete("/:id", cfg.Orders.DeleteOrder)
}
