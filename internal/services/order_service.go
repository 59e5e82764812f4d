package services

import (
	"log"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// EventPublisher publishes order lifecycle events to the message broker.
// A nil publisher disables event publication (used in tests and when the
// broker is not configured).
type EventPublisher interface {
	PublishOrderCreated(orderData map[string]interface{}) error
}

// CreateOrderRequest is the validated payload for placing an order. The
// schema deliberately has no status or date field: new orders always start
// at Pending with the server's clock, regardless of what a client sends.
type CreateOrderRequest struct {
	UserID    string `json:"userID" validate:"required"`
	ProductID string `json:"productID" validate:"required"`
	Number    string `json:"number" validate:"required"`
	Address   string `json:"address" validate:"required"`
}

// OrderService handles business logic related to orders.
type OrderService struct {
	repo      repositories.OrderRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repositories.OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// CreateOrder validates the payload and stores a new Pending order, then
// publishes an order.created event. The insert is the single atomic write;
// a failed publish is logged and does not roll the order back.
func (s *OrderService) CreateOrder(req CreateOrderRequest) (*models.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	order := &models.Order{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Number:    req.Number,
		Address:   req.Address,
		Status:    models.StatusPending,
	}
	if err := s.repo.Create(order); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"orderID":   order.ID,
			"userID":    order.UserID,
			"productID": order.ProductID,
			"status":    order.Status,
			"date":      order.Date,
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: failed to publish order.created for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// GetAllOrders retrieves every order in its joined admin shape.
func (s *OrderService) GetAllOrders() ([]models.OrderView, error) {
	return s.repo.GetAllViews()
}

// GetOrderByID retrieves one order in its joined shape.
func (s *OrderService) GetOrderByID(id string) (*models.OrderView, error) {
	return s.repo.GetViewByID(id)
}

// GetOrdersByUser retrieves one user's orders joined with product details.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.UserOrderView, error) {
	if userID == "" {
		return nil, apperrors.Validationf("user ID is required")
	}
	return s.repo.GetViewsByUser(userID)
}

// UpdateOrderStatus moves the order to the given status. Any status can
// move to any other; only membership in the four-value enum is enforced.
// Returns the updated order in its raw shape.
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, apperrors.Validationf("invalid order status: %s", status)
	}
	return s.repo.UpdateStatus(id, status)
}

// DeleteOrder deletes an order by its ID.
func (s *OrderService) DeleteOrder(id string) error {
	return s.repo.Delete(id)
}
