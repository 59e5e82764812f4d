package repositories

import (
	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access.
//
// Read views are denormalized at query time: the order is joined with the
// user and product it references. An order whose user or product has been
// deleted is excluded from every view (inner-join semantics).
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetAllViews() ([]models.OrderView, error)
	GetViewByID(id string) (*models.OrderView, error)
	GetViewsByUser(userID string) ([]models.UserOrderView, error)
	// UpdateStatus sets the order's status and returns the updated order
	// in its raw, non-joined shape.
	UpdateStatus(id string, status models.OrderStatus) (*models.Order, error)
	Delete(id string) error
}
