package services

import (
	"strings"
	"testing"

	"github.com/servetisikli/takstore-backend/internal/models"
	"github.com/servetisikli/takstore-backend/internal/repositories"
	"github.com/servetisikli/takstore-backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepository serves a fixed catalog slice.
type fakeProductRepository struct {
	products []models.Product
}

func (r *fakeProductRepository) FindAll() ([]models.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepository) FindByID(id string) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, repositories.ErrProductNotFound
}

func (r *fakeProductRepository) FindByCategory(category string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepository) Search(query string) ([]models.Product, error) {
	var out []models.Product
	q := strings.ToLower(query)
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func testCatalog() []models.Product {
	board := models.Product{Name: "Walnut Board", Category: "boards", Price: 4500}
	board.ID = "prod-1"
	table := models.Product{Name: "Oak Table", Category: "tables", Price: 89900}
	table.ID = "prod-2"
	return []models.Product{board, table}
}

func TestListProducts(t *testing.T) {
	svc := NewProductService(&fakeProductRepository{products: testCatalog()})

	products, err := svc.ListProducts()
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestGetProductByID(t *testing.T) {
	svc := NewProductService(&fakeProductRepository{products: testCatalog()})

	product, err := svc.GetProductByID("prod-2")
	require.NoError(t, err)
	assert.Equal(t, "Oak Table", product.Name)

	_, err = svc.GetProductByID("missing")
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestGetProductsByCategory(t *testing.T) {
	svc := NewProductService(&fakeProductRepository{products: testCatalog()})

	products, err := svc.GetProductsByCategory("boards")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Walnut Board", products[0].Name)
}

func TestGetProductsByCategoryEmpty(t *testing.T) {
	svc := NewProductService(&fakeProductRepository{products: testCatalog()})

	_, err := svc.GetProductsByCategory("chairs")
	assert.ErrorIs(t, err, apperrors.ErrNoCategoryProducts)
}

func TestSearchProducts(t *testing.T) {
	svc := NewProductService(&fakeProductRepository{products: testCatalog()})

	products, err := svc.SearchProducts("walnut")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Walnut Board", products[0].Name)

	// No hits is a valid empty result, not an error.
	products, err = svc.SearchProducts("granite")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSearchProductsRequiresQuery(t *testing.T) {
	svc := NewProductService(&fakeProductRepository{products: testCatalog()})

	_, err := svc.SearchProducts("")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}
