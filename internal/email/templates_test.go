package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderVerificationTemplate(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	body, err := tm.Render(TemplateVerification, TemplateData{
		"FirstName":       "Anna",
		"LastName":        "Schmidt",
		"VerificationURL": "http://localhost:5000/api/user/verify-email/abc",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Hello Anna Schmidt")
	assert.Contains(t, body, "http://localhost:5000/api/user/verify-email/abc")
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	_, err = tm.Render("no-such-template", TemplateData{})
	assert.Error(t, err)
}

func TestRenderEscapesHTML(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	body, err := tm.Render(TemplateVerification, TemplateData{
		"FirstName":       "<script>alert(1)</script>",
		"LastName":        "x",
		"VerificationURL": "http://localhost:5000/verify",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "33.80 €", FormatPrice(3380))
	assert.Equal(t, "0.00 €", FormatPrice(0))
	assert.Equal(t, "10.00 €", FormatPrice(1000))
	assert.Equal(t, "0.05 €", FormatPrice(5))
}
