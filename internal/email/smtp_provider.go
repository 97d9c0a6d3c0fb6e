package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider over an SMTP relay.
type SMTPProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer TemplateRenderer
}

// NewSMTPProvider creates an SMTP provider with the built-in templates.
func NewSMTPProvider(config *SMTPConfig) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	return &SMTPProvider{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: tm,
	}, nil
}

// Send delivers a single message through the relay.
func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}
	m.SetHeader("From", m.FormatAddress(from, p.config.FromName))
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) sendTemplate(to, subject, templateName string, data TemplateData) error {
	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: htmlBody,
	})
}

// SendVerification mails the verification link.
func (p *SMTPProvider) SendVerification(to, firstName, lastName, verificationURL string) error {
	return p.sendTemplate(to, "Email Verification", TemplateVerification, TemplateData{
		"FirstName":       firstName,
		"LastName":        lastName,
		"VerificationURL": verificationURL,
	})
}

// SendPasswordReset mails the reset link.
func (p *SMTPProvider) SendPasswordReset(to, firstName, lastName, resetURL string) error {
	return p.sendTemplate(to, "Password Reset", TemplatePasswordReset, TemplateData{
		"FirstName": firstName,
		"LastName":  lastName,
		"ResetURL":  resetURL,
	})
}

// SendOrderConfirmation mails the post-checkout order summary.
func (p *SMTPProvider) SendOrderConfirmation(to, firstName, lastName string, order OrderSummary) error {
	return p.sendTemplate(to, "Order Confirmation", TemplateOrderConfirmation, TemplateData{
		"FirstName":   firstName,
		"LastName":    lastName,
		"OrderNumber": order.OrderNumber,
		"TotalAmount": FormatPrice(order.TotalPrice),
		"Status":      order.Status,
	})
}

// Validate checks the provider configuration.
func (p *SMTPProvider) Validate() error {
	return p.config.Validate()
}
