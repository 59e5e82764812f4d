package services_test

import (
	"fmt"
	"testing"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetLatest(limit int) ([]models.Product, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(id string, fields map[string]interface{}) (*models.Product, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func validCreateRequest() services.CreateProductRequest {
	return services.CreateProductRequest{
		ProductTitle: "Lamp",
		Description:  "LED lamp",
		Price:        19.99,
		ProductImg:   "http://example.com/1.jpg",
		Category:     models.CategoryElectronics,
	}
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", ProductTitle: "Product A", Price: 10.0, Category: models.CategoryFashion},
		{ID: "2", ProductTitle: "Product B", Price: 20.0, Category: models.CategorySports},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetLatestProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	now := time.Now()
	expectedProducts := []models.Product{
		{ID: "2", ProductTitle: "Newest", Date: now},
		{ID: "1", ProductTitle: "Older", Date: now.Add(-time.Hour)},
	}

	// The service always asks for the storefront's fixed rail size.
	mockRepo.On("GetLatest", 8).Return(expectedProducts, nil).Once()

	products, err := service.GetLatestProducts()

	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Successful creation
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()
	product, err := service.CreateProduct(validCreateRequest())
	assert.NoError(t, err)
	assert.Equal(t, "Lamp", product.ProductTitle)
	assert.Equal(t, models.CategoryElectronics, product.Category)
	mockRepo.AssertExpectations(t)

	// Repository failure propagates
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(fmt.Errorf("database error")).Once()
	_, err = service.CreateProduct(validCreateRequest())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Missing each required field in turn
	for name, mutate := range map[string]func(*services.CreateProductRequest){
		"missing title":       func(r *services.CreateProductRequest) { r.ProductTitle = "" },
		"missing description": func(r *services.CreateProductRequest) { r.Description = "" },
		"missing price":       func(r *services.CreateProductRequest) { r.Price = 0 },
		"missing image":       func(r *services.CreateProductRequest) { r.ProductImg = "" },
		"missing category":    func(r *services.CreateProductRequest) { r.Category = "" },
	} {
		t.Run(name, func(t *testing.T) {
			req := validCreateRequest()
			mutate(&req)
			_, err := service.CreateProduct(req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}

	// Category outside the closed enum
	req := validCreateRequest()
	req.Category = "Toys"
	_, err := service.CreateProduct(req)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// No repository call should have happened for any rejected payload
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newTitle := "Lamp Pro"
	newPrice := 29.99
	updated := &models.Product{ID: "p1", ProductTitle: newTitle, Price: newPrice}

	mockRepo.On("Update", "p1", map[string]interface{}{
		"product_title": newTitle,
		"price":         newPrice,
	}).Return(updated, nil).Once()

	product, err := service.UpdateProduct("p1", services.UpdateProductRequest{
		ProductTitle: &newTitle,
		Price:        &newPrice,
	})
	assert.NoError(t, err)
	assert.Equal(t, updated, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_Validation(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Empty update body
	_, err := service.UpdateProduct("p1", services.UpdateProductRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Supplied category must still be in the enum
	badCategory := models.Category("Toys")
	_, err = service.UpdateProduct("p1", services.UpdateProductRequest{Category: &badCategory})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Supplied price must still be positive
	badPrice := -5.0
	_, err = service.UpdateProduct("p1", services.UpdateProductRequest{Price: &badPrice})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_RejectsZeroValues(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// A supplied-but-zero field is not the same as an omitted one: it must
	// fail its rule chain instead of being written through.
	emptyString := ""
	zeroPrice := 0.0
	emptyCategory := models.Category("")

	for name, req := range map[string]services.UpdateProductRequest{
		"empty title":       {ProductTitle: &emptyString},
		"empty description": {Description: &emptyString},
		"zero price":        {Price: &zeroPrice},
		"empty image":       {ProductImg: &emptyString},
		"empty category":    {Category: &emptyCategory},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := service.UpdateProduct("p1", req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}

	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Delete", "p1").Return(nil).Once()
	err := service.DeleteProduct("p1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	mockRepo.On("Delete", "missing").Return(apperrors.NotFoundf("product with ID missing")).Once()
	err = service.DeleteProduct("missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
