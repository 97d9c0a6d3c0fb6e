package handlers

import (
	"net/http"

	"github.com/servetisikli/takstore-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves the public catalog endpoints.
type ProductHandler struct {
	*BaseHandler
	productService services.ProductService
}

func NewProductHandler(base *BaseHandler, productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		BaseHandler:    base,
		productService: productService,
	}
}

// ListProducts handles GET /api/product.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/product/:id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetProductsByCategory handles GET /api/product/category/:category.
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	products, err := h.productService.GetProductsByCategory(c.Param("category"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// SearchProducts handles GET /api/product/search?q=term.
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	products, err := h.productService.SearchProducts(c.Query("q"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}
