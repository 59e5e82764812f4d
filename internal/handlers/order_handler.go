package handlers

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes. Placing an order and reading
// one's own orders require a signed-in session; the dashboard views and
// mutations additionally require the admin role.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, authOnly fiber.Handler, adminOnly fiber.Handler) {
	orderRoutes := router.Group("/orders", authOnly)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/myOrder/:userID", h.HandleGetOrdersByUser)

	adminRoutes := orderRoutes.Group("", adminOnly)
	adminRoutes.Get("/", h.HandleGetOrders)
	adminRoutes.Get("/:id", h.HandleGetOrderByID)
	adminRoutes.Patch("/:id", h.HandleUpdateOrderStatus)
	adminRoutes.Delete("/:id", h.HandleDeleteOrder)
}

// HandleCreateOrder places a new order. The stored order always starts at
// Pending with the server clock; the response is the raw, non-joined shape.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req services.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	order, err := h.service.CreateOrder(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrders returns every order in the joined admin shape.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID returns a single order in its joined shape.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleGetOrdersByUser returns one buyer's orders joined with product
// details. A session may only read its own orders; admins may read any.
func (h *OrderHandler) HandleGetOrdersByUser(c *fiber.Ctx) error {
	userID := c.Params("userID")
	sessionUserID, _ := c.Locals("user_id").(string)
	sessionRole, _ := c.Locals("role").(string)
	if userID != sessionUserID && sessionRole != string(models.RoleAdmin) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You can only view your own orders",
		})
	}

	orders, err := h.service.GetOrdersByUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleUpdateOrderStatus moves an order to a new status and returns the
// updated order in its raw shape.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	order, err := h.service.UpdateOrderStatus(c.Params("id"), body.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleDeleteOrder removes an order by id.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteOrder(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s deleted successfully", id),
	})
}
