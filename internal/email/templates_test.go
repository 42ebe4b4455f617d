package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNotificationTemplate(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateNotification, TemplateData{
		"Title":   "New bid received",
		"Message": "A contractor placed a bid on your project.",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "<h2 style=\"color: #1a1a2e;\">New bid received</h2>")
	assert.Contains(t, html, "A contractor placed a bid on your project.")
	assert.Contains(t, html, "Manage your notification preferences")
}

func TestRenderVerificationTemplate(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateVerification, TemplateData{
		"CompanyName": "Acme Estates",
		"VerifyURL":   "http://localhost:3000/verify-email?token=abc",
		"ExpiresIn":   "24 hours",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Acme Estates")
	assert.Contains(t, html, "http://localhost:3000/verify-email?token=abc")
	assert.Contains(t, html, "24 hours")
}

func TestRenderEscapesHTML(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateNotification, TemplateData{
		"Title":   "<script>alert(1)</script>",
		"Message": "m",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()

	_, err := tm.Render("does-not-exist", nil)
	assert.Error(t, err)
}
