package repositories

import (
	"sort"
	"sync"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetLatest returns at most limit products, newest first.
func (r *MockProductRepository) GetLatest(limit int) ([]models.Product, error) {
	productList, _ := r.GetAll()
	sort.Slice(productList, func(i, j int) bool {
		return productList[i].Date.After(productList[j].Date)
	})
	if len(productList) > limit {
		productList = productList[:limit]
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, apperrors.NotFoundf("product with ID %s", id)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Date.IsZero() {
		product.Date = time.Now()
	}
	r.products[product.ID] = *product
	return nil
}

// Update applies a partial update keyed by column name.
func (r *MockProductRepository) Update(id string, fields map[string]interface{}) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, apperrors.NotFoundf("product with ID %s", id)
	}
	for column, value := range fields {
		switch column {
		case "product_title":
			product.ProductTitle = value.(string)
		case "description":
			product.Description = value.(string)
		case "price":
			product.Price = value.(float64)
		case "product_img":
			product.ProductImg = value.(string)
		case "category":
			product.Category = value.(models.Category)
		}
	}
	r.products[id] = product
	return &product, nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return apperrors.NotFoundf("product with ID %s", id)
	}
	delete(r.products, id)
	return nil
}
