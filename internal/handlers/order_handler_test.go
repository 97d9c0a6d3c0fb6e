package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/servetisikli/takstore-backend/internal/auth"
	"github.com/servetisikli/takstore-backend/internal/handlers"
	"github.com/servetisikli/takstore-backend/internal/models"
	"github.com/servetisikli/takstore-backend/internal/routes"
	"github.com/servetisikli/takstore-backend/internal/services/dto"
	"github.com/servetisikli/takstore-backend/internal/validator"
	"github.com/servetisikli/takstore-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderService records the ids it was called with and returns canned
// responses.
type stubOrderService struct {
	order      *dto.OrderResponse
	orders     []*dto.OrderResponse
	intent     *dto.PaymentIntentResponse
	err        error
	lastUserID *string
}

func (s *stubOrderService) CreateOrder(req *dto.CreateOrderRequest, userID *string) (*dto.OrderResponse, error) {
	s.lastUserID = userID
	return s.order, s.err
}
func (s *stubOrderService) GetOrderByID(id string) (*dto.OrderResponse, error) {
	return s.order, s.err
}
func (s *stubOrderService) GetOrdersForUser(userID string) ([]*dto.OrderResponse, error) {
	return s.orders, s.err
}
func (s *stubOrderService) UpdateOrderStatus(id string, status models.OrderStatus) (*dto.OrderResponse, error) {
	return s.order, s.err
}
func (s *stubOrderService) DeleteOrder(id string) error { return s.err }
func (s *stubOrderService) CreatePaymentIntent(ctx context.Context, orderID string) (*dto.PaymentIntentResponse, error) {
	return s.intent, s.err
}
func (s *stubOrderService) ConfirmPayment(ctx context.Context, orderID, paymentIntentID string) (*dto.OrderResponse, error) {
	return s.order, s.err
}

func newOrderTestRouter(orderSvc *stubOrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	base := handlers.NewBaseHandler(validator.New())

	router := gin.New()
	routes.RegisterRoutes(router, &handlers.AppHandlers{
		User:    handlers.NewUserHandler(base, &stubAuthService{}, &stubUserService{}, "http://localhost:5173", false),
		Product: handlers.NewProductHandler(base, nil),
		Order:   handlers.NewOrderHandler(base, orderSvc),
	}, testAccessSecret)
	return router
}

const createOrderBody = `{
	"orderItems": [
		{"name": "Walnut Board", "qty": 2, "price": 1000, "product": "prod-1"}
	],
	"shippingAddress": {
		"address": "Hauptstrasse 1",
		"city": "Berlin",
		"postalCode": "10115",
		"country": "DE"
	},
	"itemsPrice": 2000,
	"customerInfo": {
		"firstName": "Anna",
		"lastName": "Schmidt",
		"email": "anna@example.com",
		"phone": "+49 30 1234567"
	}
}`

func TestCreateOrderAsGuest(t *testing.T) {
	svc := &stubOrderService{order: &dto.OrderResponse{ID: "order-1", OrderNumber: "ORD-010925-ABC123"}}
	router := newOrderTestRouter(svc)

	w := postJSON(router, "/api/order", createOrderBody)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, svc.lastUserID)
}

func TestCreateOrderWithSession(t *testing.T) {
	svc := &stubOrderService{order: &dto.OrderResponse{ID: "order-1"}}
	router := newOrderTestRouter(svc)

	token, err := auth.GenerateAccessToken("user-1", false, testAccessSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(createOrderBody))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.lastUserID)
	assert.Equal(t, "user-1", *svc.lastUserID)
}

func TestCreateOrderRejectsMissingFields(t *testing.T) {
	router := newOrderTestRouter(&stubOrderService{})

	w := postJSON(router, "/api/order", `{"orderItems": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMyOrdersRequiresSession(t *testing.T) {
	router := newOrderTestRouter(&stubOrderService{orders: []*dto.OrderResponse{}})

	req := httptest.NewRequest(http.MethodGet, "/api/order/myorders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := auth.GenerateAccessToken("user-1", false, testAccessSecret)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/order/myorders", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: token})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateOrderStatusRequiresAdmin(t *testing.T) {
	router := newOrderTestRouter(&stubOrderService{order: &dto.OrderResponse{ID: "order-1"}})

	userToken, err := auth.GenerateAccessToken("user-1", false, testAccessSecret)
	require.NoError(t, err)
	adminToken, err := auth.GenerateAccessToken("admin-1", true, testAccessSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/order/order-1/status", strings.NewReader(`{"status": "completed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: userToken})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodPut, "/api/order/order-1/status", strings.NewReader(`{"status": "completed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: adminToken})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	router := newOrderTestRouter(&stubOrderService{})

	adminToken, err := auth.GenerateAccessToken("admin-1", true, testAccessSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/order/order-1/status", strings.NewReader(`{"status": "shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: adminToken})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmPaymentIsPublic(t *testing.T) {
	router := newOrderTestRouter(&stubOrderService{order: &dto.OrderResponse{ID: "order-1", IsPaid: true}})

	req := httptest.NewRequest(http.MethodPut, "/api/order/order-1/pay", strings.NewReader(`{"payment_intent_id": "pi_1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isPaid":true`)
}

func TestConfirmPaymentNotSucceededStatus(t *testing.T) {
	router := newOrderTestRouter(&stubOrderService{err: apperrors.ErrPaymentNotSuccessful})

	req := httptest.NewRequest(http.MethodPut, "/api/order/order-1/pay", strings.NewReader(`{"payment_intent_id": "pi_1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePaymentIntentEndpoint(t *testing.T) {
	router := newOrderTestRouter(&stubOrderService{intent: &dto.PaymentIntentResponse{ClientSecret: "pi_secret"}})

	w := postJSON(router, "/api/order/order-1/create-payment-intent", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pi_secret")
}

func TestDeleteOrderRequiresAdmin(t *testing.T) {
	router := newOrderTestRouter(&stubOrderService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/order/order-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
