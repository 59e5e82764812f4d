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

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves every product, unfiltered and unpaginated. Callers apply
// their own search and category filtering against the full list.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetLatest retrieves at most limit products ordered by descending date.
func (r *GORMProductRepository) GetLatest(limit int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("date DESC").Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get latest products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("product id %q: %w", id, apperrors.ErrInvalidID)
	}
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("product with ID %s", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product, assigning an ID and creation date when
// they are not already set.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Date.IsZero() {
		product.Date = time.Now()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update applies a partial update to the product and returns it in its
// updated form.
func (r *GORMProductRepository) Update(id string, fields map[string]interface{}) (*models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("product id %q: %w", id, apperrors.ErrInvalidID)
	}
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFoundf("product with ID %s", id)
	}
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product %s after update: %w", id, err)
	}
	return &product, nil
}

// Delete deletes a product by its ID. Orders referencing the product keep
// their dangling reference; the join views exclude them.
func (r *GORMProductRepository) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("product id %q: %w", id, apperrors.ErrInvalidID)
	}
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFoundf("product with ID %s", id)
	}
	return nil
}
