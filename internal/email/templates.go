package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Template names used by the services.
const (
	TemplateNotification = "notification"
	TemplateVerification = "email_verification"
)

// notificationTemplate is the fixed skeleton for notification emails:
// title as heading, message as body, static footer.
const notificationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 0; background-color: #f4f4f4;">
  <div style="max-width: 600px; margin: 0 auto; padding: 24px; background-color: #ffffff;">
    <h2 style="color: #1a1a2e;">{{.Title}}</h2>
    <p style="color: #333333; line-height: 1.5;">{{.Message}}</p>
    <hr style="border: none; border-top: 1px solid #e0e0e0;">
    <p style="color: #999999; font-size: 12px;">
      You are receiving this email because you have an account on TenderLink.
      Manage your notification preferences in your account settings.
    </p>
  </div>
</body>
</html>`

const verificationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 0; background-color: #f4f4f4;">
  <div style="max-width: 600px; margin: 0 auto; padding: 24px; background-color: #ffffff;">
    <h2 style="color: #1a1a2e;">Verify your email address</h2>
    <p style="color: #333333; line-height: 1.5;">
      Welcome to TenderLink, {{.CompanyName}}. Click the link below to verify
      your email address. The link expires in {{.ExpiresIn}}.
    </p>
    <p><a href="{{.VerifyURL}}" style="color: #0f6fff;">Verify email</a></p>
    <hr style="border: none; border-top: 1px solid #e0e0e0;">
    <p style="color: #999999; font-size: 12px;">
      If you did not create a TenderLink account, you can ignore this email.
    </p>
  </div>
</body>
</html>`

// TemplateManager implements TemplateRenderer over html/template.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager preloaded with the built-in templates.
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	// Built-ins are compile-time constants; parse errors are programmer errors.
	if err := tm.AddTemplate(TemplateNotification, notificationTemplate); err != nil {
		panic(fmt.Sprintf("invalid built-in template %q: %v", TemplateNotification, err))
	}
	if err := tm.AddTemplate(TemplateVerification, verificationTemplate); err != nil {
		panic(fmt.Sprintf("invalid built-in template %q: %v", TemplateVerification, err))
	}

	return tm
}

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

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}
