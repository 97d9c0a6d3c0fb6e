package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/servetisikli/takstore-backend/internal/email"
	"github.com/servetisikli/takstore-backend/internal/logger"
	"github.com/servetisikli/takstore-backend/internal/payment"
)

// MockEmailProvider logs outbound mail instead of sending it. Used in
// development when SMTP credentials are not configured.
type MockEmailProvider struct{}

func NewMockEmailProvider() *MockEmailProvider {
	return &MockEmailProvider{}
}

func (p *MockEmailProvider) Send(msg *email.Email) error {
	logger.Info("MOCK EMAIL: send", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (p *MockEmailProvider) SendVerification(to, firstName, lastName, verificationURL string) error {
	logger.Info("MOCK EMAIL: verification", "to", to, "url", verificationURL)
	return nil
}

func (p *MockEmailProvider) SendPasswordReset(to, firstName, lastName, resetURL string) error {
	logger.Info("MOCK EMAIL: password reset", "to", to, "url", resetURL)
	return nil
}

func (p *MockEmailProvider) SendOrderConfirmation(to, firstName, lastName string, order email.OrderSummary) error {
	logger.Info("MOCK EMAIL: order confirmation", "to", to, "order_number", order.OrderNumber)
	return nil
}

func (p *MockEmailProvider) Validate() error { return nil }

// MockPaymentProvider fakes the payment gateway. Created intents succeed
// immediately on retrieval, so the full checkout flow works without a
// Stripe key.
type MockPaymentProvider struct {
	mu      sync.Mutex
	intents map[string]*payment.Intent
	seq     int
}

func NewMockPaymentProvider() *MockPaymentProvider {
	return &MockPaymentProvider{
		intents: make(map[string]*payment.Intent),
	}
}

func (p *MockPaymentProvider) CreateIntent(ctx context.Context, params payment.CreateIntentParams) (*payment.Intent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq++
	intent := &payment.Intent{
		ID:           fmt.Sprintf("pi_mock_%d_%d", time.Now().Unix(), p.seq),
		ClientSecret: fmt.Sprintf("pi_mock_secret_%d", p.seq),
		Status:       payment.StatusSucceeded,
	}
	p.intents[intent.ID] = intent

	logger.Info("MOCK PAYMENT: intent created",
		"intent_id", intent.ID,
		"amount", params.Amount,
		"currency", params.Currency,
	)
	return intent, nil
}

func (p *MockPaymentProvider) RetrieveIntent(ctx context.Context, id string) (*payment.Intent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if intent, ok := p.intents[id]; ok {
		return intent, nil
	}
	return nil, fmt.Errorf("mock payment intent %s not found", id)
}
