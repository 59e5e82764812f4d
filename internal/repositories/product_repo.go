package repositories

import (
	"storefront/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	// GetLatest returns at most limit products ordered by descending
	// creation date.
	GetLatest(limit int) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	// Update applies a partial update and returns the updated product.
	// The fields map holds column-name keys for the supplied fields only.
	Update(id string, fields map[string]interface{}) (*models.Product, error)
	Delete(id string) error
}
