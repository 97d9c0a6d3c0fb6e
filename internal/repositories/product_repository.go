package repositories

import (
	"errors"
	"strings"

	"github.com/servetisikli/takstore-backend/internal/models"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	FindAll() ([]models.Product, error)
	FindByID(id string) (*models.Product, error)
	FindByCategory(category string) ([]models.Product, error)
	// Search matches the query against product name and category,
	// case-insensitively.
	Search(query string) ([]models.Product, error)
}

type ProductRepositoryImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) FindAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepositoryImpl) FindByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) FindByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("category = ?", strings.ToLower(category)).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepositoryImpl) Search(query string) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + query + "%"
	err := r.db.
		Where("name ILIKE ? OR category ILIKE ?", pattern, pattern).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
