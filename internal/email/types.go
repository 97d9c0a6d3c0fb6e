package email

// Email is a single outbound message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData carries values into the mail templates.
type TemplateData map[string]interface{}

// OrderSummary is the data rendered into the order-confirmation mail.
type OrderSummary struct {
	OrderNumber string
	TotalPrice  int64
	Status      string
}
