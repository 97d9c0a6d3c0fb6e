package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Template names used by the provider.
const (
	TemplateVerification      = "verification"
	TemplatePasswordReset     = "password_reset"
	TemplateOrderConfirmation = "order_confirmation"
)

// TemplateManager keeps parsed mail templates in memory.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager creates a manager preloaded with the built-in templates.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	for name, body := range builtinTemplates {
		if err := tm.AddTemplate(name, body); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

// Render executes a template with data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// AddTemplate parses and registers a template.
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}

var builtinTemplates = map[string]string{
	TemplateVerification: `<p>Hello {{.FirstName}} {{.LastName}},</p>
<p>To verify your email address, please click on the following link:</p>
<p><a href="{{.VerificationURL}}">click here</a></p>
<p>If the link does not work, you can copy and paste the following URL into your browser:</p>
<p>{{.VerificationURL}}</p>
<p>If you did not request this, please ignore this email.</p>`,

	TemplatePasswordReset: `<p>Hello {{.FirstName}} {{.LastName}},</p>
<p>To reset your password, please click on the following link:</p>
<p><a href="{{.ResetURL}}">click here</a></p>
<p>If the link does not work, you can copy and paste the following URL into your browser:</p>
<p>{{.ResetURL}}</p>
<p>If you did not request this, please ignore this email.</p>`,

	TemplateOrderConfirmation: `<p>Hello {{.FirstName}} {{.LastName}},</p>
<p>Your order has been successfully placed. Here are your order details:</p>
<p>Order Number: {{.OrderNumber}}<br>
Total Amount: {{.TotalAmount}}<br>
Order Status: {{.Status}}</p>
<p>You can log in to your account to check the status of your order.</p>`,
}

// FormatPrice renders integer cents as a euro amount for mail bodies.
func FormatPrice(cents int64) string {
	return fmt.Sprintf("%.2f €", float64(cents)/100)
}
