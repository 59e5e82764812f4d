package repositories

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderViewSelect is the projection shared by the admin list and the order
// detail view: the raw order columns plus the joined buyer and product
// columns, aliased onto the view struct's fields.
const orderViewSelect = `orders.id, orders.user_id, orders.product_id,
	users.name, users.email,
	products.product_title, products.description, products.price,
	products.product_img, products.category,
	orders.number, orders.address, orders.status, orders.date`

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create creates a new order, assigning an ID and creation date when they
// are not already set. The referenced user and product ids are stored as
// given; referential integrity is the caller's responsibility.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Date.IsZero() {
		order.Date = time.Now()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves a single order in its raw, non-joined shape.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("order with ID %s", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetAllViews retrieves every order joined with its buyer and product.
// Orders whose user or product has been deleted are excluded by the inner
// joins rather than surfaced as null-filled records.
func (r *GORMOrderRepository) GetAllViews() ([]models.OrderView, error) {
	var views []models.OrderView
	err := r.db.Table("orders").
		Select(orderViewSelect).
		Joins("JOIN users ON users.id = orders.user_id").
		Joins("JOIN products ON products.id = orders.product_id").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get order views: %w", err)
	}
	return views, nil
}

// GetViewByID retrieves one order in its joined shape. NotFound covers both
// a missing order and an order whose user or product no longer resolves.
func (r *GORMOrderRepository) GetViewByID(id string) (*models.OrderView, error) {
	var view models.OrderView
	err := r.db.Table("orders").
		Select(orderViewSelect).
		Joins("JOIN users ON users.id = orders.user_id").
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.id = ?", id).
		Take(&view).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("order with ID %s", id)
		}
		return nil, fmt.Errorf("failed to get order view by ID %s: %w", id, err)
	}
	return &view, nil
}

// GetViewsByUser retrieves one user's orders joined with product details.
// The buyer already knows who they are, so no user columns are joined in.
func (r *GORMOrderRepository) GetViewsByUser(userID string) ([]models.UserOrderView, error) {
	var views []models.UserOrderView
	err := r.db.Table("orders").
		Select(`orders.id, orders.user_id, orders.product_id,
			products.product_title, products.description, products.price,
			products.product_img, products.category,
			orders.number, orders.address, orders.status, orders.date`).
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.user_id = ?", userID).
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get order views for user %s: %w", userID, err)
	}
	return views, nil
}

// UpdateStatus sets the order's status and returns the updated order.
func (r *GORMOrderRepository) UpdateStatus(id string, status models.OrderStatus) (*models.Order, error) {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update status of order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFoundf("order with ID %s", id)
	}
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload order %s after status update: %w", id, err)
	}
	return &order, nil
}

// Delete deletes an order by its ID.
func (r *GORMOrderRepository) Delete(id string) error {
	res := r.db.Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFoundf("order with ID %s", id)
	}
	return nil
}
