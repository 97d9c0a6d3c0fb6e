package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/servetisikli/takstore-backend/internal/email"
	"github.com/servetisikli/takstore-backend/internal/logger"
	"github.com/servetisikli/takstore-backend/internal/models"
	"github.com/servetisikli/takstore-backend/internal/payment"
	"github.com/servetisikli/takstore-backend/internal/repositories"
	"github.com/servetisikli/takstore-backend/internal/services/dto"
	"github.com/servetisikli/takstore-backend/pkg/apperrors"
)

const (
	// taxRatePercent is the VAT applied to the items subtotal.
	taxRatePercent = 19
	// shippingPriceCents is the flat shipping fee (10 EUR).
	shippingPriceCents int64 = 1000

	// orderNumberAttempts bounds the retries on an order-number collision.
	orderNumberAttempts = 3
)

type OrderService interface {
	CreateOrder(req *dto.CreateOrderRequest, userID *string) (*dto.OrderResponse, error)
	GetOrderByID(id string) (*dto.OrderResponse, error)
	GetOrdersForUser(userID string) ([]*dto.OrderResponse, error)
	UpdateOrderStatus(id string, status models.OrderStatus) (*dto.OrderResponse, error)
	DeleteOrder(id string) error
	CreatePaymentIntent(ctx context.Context, orderID string) (*dto.PaymentIntentResponse, error)
	ConfirmPayment(ctx context.Context, orderID, paymentIntentID string) (*dto.OrderResponse, error)
}

type OrderServiceImpl struct {
	orderRepo       repositories.OrderRepository
	paymentProvider payment.Provider
	emailProvider   email.Provider
	currency        string
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	paymentProvider payment.Provider,
	emailProvider email.Provider,
	currency string,
) OrderService {
	return &OrderServiceImpl{
		orderRepo:       orderRepo,
		paymentProvider: paymentProvider,
		emailProvider:   emailProvider,
		currency:        currency,
	}
}

// CreateOrder prices and persists a checkout submission. All monetary
// values are integer cents; totalPrice is fixed here and never recomputed.
func (s *OrderServiceImpl) CreateOrder(req *dto.CreateOrderRequest, userID *string) (*dto.OrderResponse, error) {
	if len(req.OrderItems) == 0 {
		return nil, apperrors.ErrNoOrderItems
	}

	taxPrice := CalculateTax(req.ItemsPrice)
	totalPrice := req.ItemsPrice + taxPrice + shippingPriceCents

	order := &models.Order{
		UserID: userID,
		CustomerInfo: models.CustomerInfo{
			FirstName: req.CustomerInfo.FirstName,
			LastName:  req.CustomerInfo.LastName,
			Email:     req.CustomerInfo.Email,
			Phone:     req.CustomerInfo.Phone,
		},
		ShippingAddress: models.ShippingAddress{
			Address:    req.ShippingAddress.Address,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
		ItemsPrice:    req.ItemsPrice,
		TaxPrice:      taxPrice,
		ShippingPrice: shippingPriceCents,
		TotalPrice:    totalPrice,
		Status:        models.OrderStatusPreparing,
		IsPaid:        false,
	}

	for _, item := range req.OrderItems {
		order.Items = append(order.Items, models.OrderItem{
			Name:      item.Name,
			Qty:       item.Qty,
			ImageURL:  item.ImageURL,
			Price:     item.Price,
			ProductID: item.Product,
		})
	}

	// The random suffix can collide with an existing order number; retry
	// with a fresh one before giving up.
	var err error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		order.OrderNumber, err = GenerateOrderNumber()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		err = s.orderRepo.Create(order)
		if err == nil {
			break
		}
		if !apperrors.Is(err, repositories.ErrDuplicateOrderNumber) {
			return nil, apperrors.InternalError(err)
		}
	}
	if err != nil {
		return nil, apperrors.ErrConflict(err, "order", "Could not allocate an order number")
	}

	s.sendOrderConfirmationEmail(order)

	return dto.NewOrderResponse(order), nil
}

// GetOrderByID returns the denormalized order view with the joined owner.
func (s *OrderServiceImpl) GetOrderByID(id string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.FindByIDWithUser(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewOrderResponse(order), nil
}

// GetOrdersForUser lists the caller's orders, newest first.
func (s *OrderServiceImpl) GetOrdersForUser(userID string) ([]*dto.OrderResponse, error) {
	orders, err := s.orderRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, dto.NewOrderResponse(&orders[i]))
	}
	return out, nil
}

// UpdateOrderStatus sets a new lifecycle status (admin only, enforced at
// the route).
func (s *OrderServiceImpl) UpdateOrderStatus(id string, status models.OrderStatus) (*dto.OrderResponse, error) {
	if !models.ValidOrderStatus(status) {
		return nil, apperrors.ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewOrderResponse(order), nil
}

// DeleteOrder removes an order (admin only, enforced at the route).
func (s *OrderServiceImpl) DeleteOrder(id string) error {
	err := s.orderRepo.Delete(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return apperrors.ErrOrderNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// CreatePaymentIntent creates a gateway intent for the order's exact total
// and returns the client secret used to complete payment out-of-band.
func (s *OrderServiceImpl) CreatePaymentIntent(ctx context.Context, orderID string) (*dto.PaymentIntentResponse, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	intent, err := s.paymentProvider.CreateIntent(ctx, payment.CreateIntentParams{
		Amount:   order.TotalPrice,
		Currency: s.currency,
		Metadata: map[string]string{
			"orderId":     order.ID,
			"orderNumber": order.OrderNumber,
		},
	})
	if err != nil {
		return nil, apperrors.ErrPaymentProvider(err)
	}

	return &dto.PaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

// ConfirmPayment verifies the intent with the gateway and marks the order
// paid. The client-supplied intent id is only a lookup key; the status
// always comes from the gateway.
func (s *OrderServiceImpl) ConfirmPayment(ctx context.Context, orderID, paymentIntentID string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	intent, err := s.paymentProvider.RetrieveIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, apperrors.ErrPaymentProvider(err)
	}

	if intent.Status != payment.StatusSucceeded {
		return nil, apperrors.ErrPaymentNotSuccessful
	}

	now := time.Now()
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = models.PaymentResult{
		IntentID:     intent.ID,
		Status:       string(intent.Status),
		UpdateTime:   now.UTC().Format(time.RFC3339),
		ReceiptEmail: intent.ReceiptEmail,
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewOrderResponse(order), nil
}

// --- helpers ---

// CalculateTax computes round(itemsPrice * 19%) in integer arithmetic.
func CalculateTax(itemsPrice int64) int64 {
	return (itemsPrice*taxRatePercent + 50) / 100
}

const orderNumberCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber builds a human-readable order number:
// ORD-DDMMYY-<6 random chars>.
func GenerateOrderNumber() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = orderNumberCharset[int(b)%len(orderNumberCharset)]
	}
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("020106"), string(buf)), nil
}

// sendOrderConfirmationEmail dispatches the confirmation best-effort; a
// provider outage never fails the checkout.
func (s *OrderServiceImpl) sendOrderConfirmationEmail(order *models.Order) {
	if s.emailProvider == nil {
		return
	}

	to := order.CustomerInfo.Email
	firstName := order.CustomerInfo.FirstName
	lastName := order.CustomerInfo.LastName
	summary := email.OrderSummary{
		OrderNumber: order.OrderNumber,
		TotalPrice:  order.TotalPrice,
		Status:      string(order.Status),
	}

	go func() {
		if err := s.emailProvider.SendOrderConfirmation(to, firstName, lastName, summary); err != nil {
			logger.Error("Failed to send order confirmation email",
				"error", err,
				"order_number", summary.OrderNumber,
			)
		}
	}()
}
