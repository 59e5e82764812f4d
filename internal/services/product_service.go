package services

import (
	"fmt"
	"strings"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// latestProductCount is how many items the storefront's "latest products"
// rail shows.
const latestProductCount = 8

// CreateProductRequest is the validated payload for adding a product.
// All five fields are mandatory.
type CreateProductRequest struct {
	ProductTitle string          `json:"productTitle" validate:"required,min=2,max=200"`
	Description  string          `json:"description" validate:"required,max=2000"`
	Price        float64         `json:"price" validate:"required,gt=0"`
	ProductImg   string          `json:"productImg" validate:"required,url"`
	Category     models.Category `json:"category" validate:"required,oneof=Electronics Fashion Supplies Beauty Sports Groceries"`
}

// UpdateProductRequest is the validated payload for a partial product
// update. Nil fields are left untouched; supplied fields are re-validated,
// so omitnil rather than omitempty: a supplied zero value (empty title,
// zero price) must still fail its rule chain instead of skipping it.
type UpdateProductRequest struct {
	ProductTitle *string          `json:"productTitle" validate:"omitnil,min=2,max=200"`
	Description  *string          `json:"description" validate:"omitnil,min=1,max=2000"`
	Price        *float64         `json:"price" validate:"omitnil,gt=0"`
	ProductImg   *string          `json:"productImg" validate:"omitnil,url"`
	Category     *models.Category `json:"category" validate:"omitnil,oneof=Electronics Fashion Supplies Beauty Sports Groceries"`
}

// Empty reports whether the update supplies no fields at all.
func (r UpdateProductRequest) Empty() bool {
	return r.ProductTitle == nil && r.Description == nil && r.Price == nil &&
		r.ProductImg == nil && r.Category == nil
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validator.New(),
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetLatestProducts retrieves the most recently added products, newest
// first, capped at latestProductCount.
func (s *ProductService) GetLatestProducts() ([]models.Product, error) {
	return s.repo.GetLatest(latestProductCount)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates the payload and creates a new product, returning
// it with its generated ID and creation date.
func (s *ProductService) CreateProduct(req CreateProductRequest) (*models.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, asValidationError(err)
	}
	product := &models.Product{
		ProductTitle: req.ProductTitle,
		Description:  req.Description,
		Price:        req.Price,
		ProductImg:   req.ProductImg,
		Category:     req.Category,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies a partial update. An empty payload is a validation
// error, and every supplied field is re-checked against the model's
// constraints before anything is written.
func (s *ProductService) UpdateProduct(id string, req UpdateProductRequest) (*models.Product, error) {
	if req.Empty() {
		return nil, apperrors.Validationf("no fields to update")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	fields := make(map[string]interface{})
	if req.ProductTitle != nil {
		fields["product_title"] = *req.ProductTitle
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.ProductImg != nil {
		fields["product_img"] = *req.ProductImg
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	return s.repo.Update(id, fields)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// asValidationError converts validator failures into the ValidationError
// category with one human-readable message per failed field.
func asValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Validationf("%s", err.Error())
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
	}
	return apperrors.Validationf("%s", strings.Join(messages, "; "))
}
