package dto

import (
	"time"

	"github.com/servetisikli/takstore-backend/internal/models"
)

// OrderItemRequest is a checkout line item.
type OrderItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Qty      int    `json:"qty" binding:"required,gt=0"`
	ImageURL string `json:"image"`
	Price    int64  `json:"price" binding:"required,gte=0"`
	Product  string `json:"product" binding:"required"`
}

// CustomerInfoRequest is required for every order, guest or registered.
type CustomerInfoRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
}

// ShippingAddressRequest is the delivery destination.
type ShippingAddressRequest struct {
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// CreateOrderRequest is the checkout payload. ItemsPrice arrives in cents.
type CreateOrderRequest struct {
	OrderItems      []OrderItemRequest     `json:"orderItems" binding:"required"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress" binding:"required"`
	ItemsPrice      int64                  `json:"itemsPrice" binding:"required,gte=0"`
	CustomerInfo    CustomerInfoRequest    `json:"customerInfo" binding:"required"`
}

// UpdateOrderStatusRequest sets a new order status (admin only).
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"is-order-status"`
}

// ConfirmPaymentRequest carries the gateway intent id to verify.
type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

// PaymentIntentResponse returns the client-side secret for completing
// payment out-of-band.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// OrderUserSummary is the joined owner view on an order response.
type OrderUserSummary struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// OrderResponse is the denormalized order view returned by the API,
// distinct from the persisted entity.
type OrderResponse struct {
	ID              string                 `json:"_id"`
	OrderNumber     string                 `json:"orderNumber"`
	User            *OrderUserSummary      `json:"user,omitempty"`
	CustomerInfo    models.CustomerInfo    `json:"customerInfo"`
	OrderItems      []OrderItemResponse    `json:"orderItems"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	ItemsPrice      int64                  `json:"itemsPrice"`
	TaxPrice        int64                  `json:"taxPrice"`
	ShippingPrice   int64                  `json:"shippingPrice"`
	TotalPrice      int64                  `json:"totalPrice"`
	Status          models.OrderStatus     `json:"status"`
	IsPaid          bool                   `json:"isPaid"`
	PaidAt          *time.Time             `json:"paidAt,omitempty"`
	PaymentResult   *models.PaymentResult  `json:"paymentResult,omitempty"`
	DeliveredAt     *time.Time             `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// OrderItemResponse is a line item in an order response.
type OrderItemResponse struct {
	Name     string `json:"name"`
	Qty      int    `json:"qty"`
	ImageURL string `json:"image"`
	Price    int64  `json:"price"`
	Product  string `json:"product"`
}

// NewOrderResponse maps a persisted order (optionally with its joined user)
// to the API view.
func NewOrderResponse(order *models.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		CustomerInfo:    order.CustomerInfo,
		ShippingAddress: order.ShippingAddress,
		ItemsPrice:      order.ItemsPrice,
		TaxPrice:        order.TaxPrice,
		ShippingPrice:   order.ShippingPrice,
		TotalPrice:      order.TotalPrice,
		Status:          order.Status,
		IsPaid:          order.IsPaid,
		PaidAt:          order.PaidAt,
		DeliveredAt:     order.DeliveredAt,
		CreatedAt:       order.CreatedAt,
	}

	for _, item := range order.Items {
		resp.OrderItems = append(resp.OrderItems, OrderItemResponse{
			Name:     item.Name,
			Qty:      item.Qty,
			ImageURL: item.ImageURL,
			Price:    item.Price,
			Product:  item.ProductID,
		})
	}

	if order.User != nil {
		resp.User = &OrderUserSummary{
			ID:        order.User.ID,
			FirstName: order.User.FirstName,
			LastName:  order.User.LastName,
			Email:     order.User.Email,
		}
	}

	if order.IsPaid && order.PaymentResult.IntentID != "" {
		pr := order.PaymentResult
		resp.PaymentResult = &pr
	}

	return resp
}
