package handlers

import (
	"net/http"

	"github.com/servetisikli/takstore-backend/internal/logger"
	"github.com/servetisikli/takstore-backend/internal/middleware"
	"github.com/servetisikli/takstore-backend/internal/models"
	"github.com/servetisikli/takstore-backend/internal/services"
	"github.com/servetisikli/takstore-backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves checkout, payment and order management endpoints.
type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

// CreateOrder handles POST /api/order. Both guests and logged-in users may
// order; when a valid session cookie is present the order is attached to
// the account.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	var userID *string
	if id := middleware.GetUserID(c); id != "" {
		userID = &id
	}

	order, err := h.orderService.CreateOrder(&req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Order created",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"total_price", order.TotalPrice,
	)
	c.JSON(http.StatusCreated, order)
}

// GetMyOrders handles GET /api/order/myorders.
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.GetOrdersForUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/order/:id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrderByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus handles PUT /api/order/:id/status (admin only).
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Param("id"), models.OrderStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Order status updated",
		"order_id", order.ID,
		"status", order.Status,
	)
	c.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/order/:id (admin only).
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	orderID := c.Param("id")
	if err := h.orderService.DeleteOrder(orderID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Order deleted", "order_id", orderID)
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

// CreatePaymentIntent handles POST /api/order/:id/create-payment-intent.
// The endpoint is public so a guest can pay right after checkout.
func (h *OrderHandler) CreatePaymentIntent(c *gin.Context) {
	intent, err := h.orderService.CreatePaymentIntent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, intent)
}

// ConfirmPayment handles PUT /api/order/:id/pay. The payment status is
// verified against the gateway; the client's claim alone never marks an
// order paid.
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	var req dto.ConfirmPaymentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	order, err := h.orderService.ConfirmPayment(c.Request.Context(), c.Param("id"), req.PaymentIntentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "Order payment confirmed",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
	)
	c.JSON(http.StatusOK, order)
}
