package models

import "time"

// OrderStatus is the order lifecycle state, mutated only by administrators.
type OrderStatus string

const (
	OrderStatusPreparing          OrderStatus = "preparing"
	OrderStatusCompleted          OrderStatus = "completed"
	OrderStatusCancelled          OrderStatus = "cancelled"
	OrderStatusPartiallyCompleted OrderStatus = "partially completed"
)

// ValidOrderStatus reports whether s is a member of the status enum.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPreparing, OrderStatusCompleted, OrderStatusCancelled, OrderStatusPartiallyCompleted:
		return true
	}
	return false
}

// CustomerInfo is required on every order, registered user or guest.
type CustomerInfo struct {
	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
	Email     string `gorm:"not null" json:"email"`
	Phone     string `gorm:"not null" json:"phone"`
}

// ShippingAddress is the delivery destination.
type ShippingAddress struct {
	Address    string `gorm:"not null" json:"address"`
	City       string `gorm:"not null" json:"city"`
	PostalCode string `gorm:"not null" json:"postalCode"`
	Country    string `gorm:"not null" json:"country"`
}

// PaymentResult records the verified gateway confirmation.
type PaymentResult struct {
	IntentID     string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"updateTime"`
	ReceiptEmail string `json:"emailAddress"`
}

// OrderItem is a purchased line item. Product data is copied at checkout so
// later catalog edits do not rewrite history.
type OrderItem struct {
	BaseModel
	OrderID   string `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	Qty       int    `gorm:"not null"`
	ImageURL  string
	Price     int64  `gorm:"not null"`
	ProductID string `gorm:"not null"`
}

// Order is the checkout record. All monetary values are cents and
// TotalPrice = ItemsPrice + TaxPrice + ShippingPrice, fixed at creation.
type Order struct {
	BaseModel
	OrderNumber string  `gorm:"uniqueIndex;not null"`
	UserID      *string `gorm:"index"`
	User        *User   `gorm:"foreignKey:UserID"`

	CustomerInfo    CustomerInfo    `gorm:"embedded;embeddedPrefix:customer_"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_"`

	ItemsPrice    int64 `gorm:"not null"`
	TaxPrice      int64 `gorm:"not null"`
	ShippingPrice int64 `gorm:"not null"`
	TotalPrice    int64 `gorm:"not null"`

	Status        OrderStatus `gorm:"type:varchar(20);not null;default:'preparing'"`
	IsPaid        bool        `gorm:"not null;default:false"`
	PaidAt        *time.Time
	PaymentResult PaymentResult `gorm:"embedded;embeddedPrefix:payment_"`
	DeliveredAt   *time.Time
}
