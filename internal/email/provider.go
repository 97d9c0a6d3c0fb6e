package email

// Provider sends transactional email. All sends are best-effort from the
// caller's point of view: workflows log failures, they do not roll back.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendVerification mails the email-verification link for a plain token.
	SendVerification(to, firstName, lastName, verificationURL string) error

	// SendPasswordReset mails the password-reset link for a plain token.
	SendPasswordReset(to, firstName, lastName, resetURL string) error

	// SendOrderConfirmation mails the order summary after checkout.
	SendOrderConfirmation(to, firstName, lastName string, order OrderSummary) error

	// Validate checks the provider configuration.
	Validate() error
}

// TemplateRenderer renders named mail templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
