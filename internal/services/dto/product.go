package dto

import (
	"time"

	"github.com/servetisikli/takstore-backend/internal/models"
)

// ProductResponse is the catalog view of a product.
type ProductResponse struct {
	ID          string                 `json:"_id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       int64                  `json:"price"`
	Stock       bool                   `json:"stock"`
	Category    string                 `json:"category"`
	ImageURL    string                 `json:"imageUrl,omitempty"`
	Options     []models.ProductOption `json:"options,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// NewProductResponse maps a product record to the API view.
func NewProductResponse(p *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Options:     p.Options.Data(),
		CreatedAt:   p.CreatedAt,
	}
}

// NewProductListResponse maps a product slice to API views.
func NewProductListResponse(products []models.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}
