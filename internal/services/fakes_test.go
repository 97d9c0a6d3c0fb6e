package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/servetisikli/takstore-backend/internal/email"
	"github.com/servetisikli/takstore-backend/internal/models"
	"github.com/servetisikli/takstore-backend/internal/payment"
	"github.com/servetisikli/takstore-backend/internal/repositories"
)

// fakeUserRepository is an in-memory UserRepository for service tests.
type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by id
	seq   int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*models.User)}
}

func (r *fakeUserRepository) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepository) FindByEmail(emailAddr string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == emailAddr {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepository) FindByVerificationToken(tokenHash string, now time.Time) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.EmailVerificationToken == tokenHash &&
			u.EmailVerificationExpires != nil && u.EmailVerificationExpires.After(now) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepository) FindByResetToken(tokenHash string, now time.Time) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetPasswordToken == tokenHash &&
			u.ResetPasswordExpires != nil && u.ResetPasswordExpires.After(now) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.seq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

// get returns the stored record without copying semantics leaking into
// assertions.
func (r *fakeUserRepository) get(id string) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp
	}
	return nil
}

func (r *fakeUserRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// fakeEmailProvider records sends. Services dispatch email from goroutines,
// so access is synchronized and tests wait via waitForSends.
type fakeEmailProvider struct {
	mu            sync.Mutex
	verifications []string // recipient addresses
	resets        []string
	confirmations []email.OrderSummary
}

func newFakeEmailProvider() *fakeEmailProvider {
	return &fakeEmailProvider{}
}

func (p *fakeEmailProvider) Send(msg *email.Email) error { return nil }

func (p *fakeEmailProvider) SendVerification(to, firstName, lastName, verificationURL string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.verifications = append(p.verifications, to)
	return nil
}

func (p *fakeEmailProvider) SendPasswordReset(to, firstName, lastName, resetURL string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resets = append(p.resets, to)
	return nil
}

func (p *fakeEmailProvider) SendOrderConfirmation(to, firstName, lastName string, order email.OrderSummary) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.confirmations = append(p.confirmations, order)
	return nil
}

func (p *fakeEmailProvider) Validate() error { return nil }

func (p *fakeEmailProvider) sendCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.verifications) + len(p.resets) + len(p.confirmations)
}

// waitForSends polls until n messages were dispatched or the deadline hits.
func (p *fakeEmailProvider) waitForSends(n int) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if p.sendCount() >= n {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return p.sendCount() >= n
}

// fakeOrderRepository is an in-memory OrderRepository for service tests.
type fakeOrderRepository struct {
	mu     sync.Mutex
	orders map[string]*models.Order
	seq    int

	// duplicateNumbers makes Create fail with ErrDuplicateOrderNumber this
	// many times before succeeding.
	duplicateNumbers int
	createAttempts   int
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: make(map[string]*models.Order)}
}

func (r *fakeOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createAttempts++
	if r.duplicateNumbers > 0 {
		r.duplicateNumbers--
		return repositories.ErrDuplicateOrderNumber
	}
	r.seq++
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", r.seq)
	}
	order.CreatedAt = time.Now()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepository) FindByID(id string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, repositories.ErrOrderNotFound
}

func (r *fakeOrderRepository) FindByIDWithUser(id string) (*models.Order, error) {
	return r.FindByID(id)
}

func (r *fakeOrderRepository) FindByUserID(userID string) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID != nil && *o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeOrderRepository) Update(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		return repositories.ErrOrderNotFound
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return repositories.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

// fakePaymentProvider returns canned intents with a configurable status.
type fakePaymentProvider struct {
	mu            sync.Mutex
	status        payment.IntentStatus
	receiptEmail  string
	createdParams []payment.CreateIntentParams
	retrieveErr   error
}

func newFakePaymentProvider(status payment.IntentStatus) *fakePaymentProvider {
	return &fakePaymentProvider{status: status}
}

func (p *fakePaymentProvider) CreateIntent(ctx context.Context, params payment.CreateIntentParams) (*payment.Intent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.createdParams = append(p.createdParams, params)
	return &payment.Intent{
		ID:           "pi_test_1",
		ClientSecret: "pi_test_1_secret",
		Status:       p.status,
	}, nil
}

func (p *fakePaymentProvider) RetrieveIntent(ctx context.Context, id string) (*payment.Intent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.retrieveErr != nil {
		return nil, p.retrieveErr
	}
	return &payment.Intent{
		ID:           id,
		ClientSecret: id + "_secret",
		Status:       p.status,
		ReceiptEmail: p.receiptEmail,
	}, nil
}
