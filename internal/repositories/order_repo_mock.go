package repositories

import (
	"sync"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// It resolves the join views against the mock user and product repositories
// it was constructed with, mirroring the inner-join semantics of the GORM
// implementation: orders with dangling references are excluded.
type MockOrderRepository struct {
	orders   map[string]models.Order
	users    *MockUserRepository
	products *MockProductRepository
	mu       sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository(users *MockUserRepository, products *MockProductRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[string]models.Order),
		users:    users,
		products: products,
	}
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Date.IsZero() {
		order.Date = time.Now()
	}
	r.orders[order.ID] = *order
	return nil
}

// GetByID returns an order by its ID in its raw shape.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NotFoundf("order with ID %s", id)
	}
	return &order, nil
}

// GetAllViews returns every order whose user and product both resolve,
// joined into the denormalized admin shape.
func (r *MockOrderRepository) GetAllViews() ([]models.OrderView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	views := make([]models.OrderView, 0, len(r.orders))
	for _, order := range r.orders {
		if view, ok := r.joinOrder(order); ok {
			views = append(views, view)
		}
	}
	return views, nil
}

// GetViewByID returns one order in its joined shape.
func (r *MockOrderRepository) GetViewByID(id string) (*models.OrderView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NotFoundf("order with ID %s", id)
	}
	view, ok := r.joinOrder(order)
	if !ok {
		return nil, apperrors.NotFoundf("order with ID %s", id)
	}
	return &view, nil
}

// GetViewsByUser returns one user's orders joined with product details.
func (r *MockOrderRepository) GetViewsByUser(userID string) ([]models.UserOrderView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var views []models.UserOrderView
	for _, order := range r.orders {
		if order.UserID != userID {
			continue
		}
		product, err := r.products.GetByID(order.ProductID)
		if err != nil {
			continue
		}
		views = append(views, models.UserOrderView{
			ID:           order.ID,
			UserID:       order.UserID,
			ProductID:    order.ProductID,
			ProductTitle: product.ProductTitle,
			Description:  product.Description,
			Price:        product.Price,
			ProductImg:   product.ProductImg,
			Category:     product.Category,
			Number:       order.Number,
			Address:      order.Address,
			Status:       order.Status,
			Date:         order.Date,
		})
	}
	return views, nil
}

// UpdateStatus updates the status of an order and returns the updated order.
func (r *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NotFoundf("order with ID %s", id)
	}
	order.Status = status
	r.orders[id] = order
	return &order, nil
}

// Delete removes an order by its ID.
func (r *MockOrderRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.orders[id]
	if !ok {
		return apperrors.NotFoundf("order with ID %s", id)
	}
	delete(r.orders, id)
	return nil
}

func (r *MockOrderRepository) joinOrder(order models.Order) (models.OrderView, bool) {
	user, err := r.users.GetByID(order.UserID)
	if err != nil {
		return models.OrderView{}, false
	}
	product, err := r.products.GetByID(order.ProductID)
	if err != nil {
		return models.OrderView{}, false
	}
	return models.OrderView{
		ID:           order.ID,
		UserID:       order.UserID,
		ProductID:    order.ProductID,
		Name:         user.Name,
		Email:        user.Email,
		ProductTitle: product.ProductTitle,
		Description:  product.Description,
		Price:        product.Price,
		ProductImg:   product.ProductImg,
		Category:     product.Category,
		Number:       order.Number,
		Address:      order.Address,
		Status:       order.Status,
		Date:         order.Date,
	}, true
}
