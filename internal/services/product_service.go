package services

import (
	"github.com/servetisikli/takstore-backend/internal/repositories"
	"github.com/servetisikli/takstore-backend/internal/services/dto"
	"github.com/servetisikli/takstore-backend/pkg/apperrors"
)

type ProductService interface {
	ListProducts() ([]*dto.ProductResponse, error)
	GetProductByID(id string) (*dto.ProductResponse, error)
	GetProductsByCategory(category string) ([]*dto.ProductResponse, error)
	SearchProducts(query string) ([]*dto.ProductResponse, error)
}

type ProductServiceImpl struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) ProductService {
	return &ProductServiceImpl{productRepo: productRepo}
}

func (s *ProductServiceImpl) ListProducts() ([]*dto.ProductResponse, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProductListResponse(products), nil
}

func (s *ProductServiceImpl) GetProductByID(id string) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProductResponse(product), nil
}

// GetProductsByCategory returns the products of a category; an empty
// category is reported as not found.
func (s *ProductServiceImpl) GetProductsByCategory(category string) ([]*dto.ProductResponse, error) {
	products, err := s.productRepo.FindByCategory(category)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(products) == 0 {
		return nil, apperrors.ErrNoCategoryProducts
	}
	return dto.NewProductListResponse(products), nil
}

func (s *ProductServiceImpl) SearchProducts(query string) ([]*dto.ProductResponse, error) {
	if query == "" {
		return nil, apperrors.NewBadRequestError("Query parameter is required.")
	}
	products, err := s.productRepo.Search(query)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProductListResponse(products), nil
}
