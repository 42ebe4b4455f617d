package email

// Provider sends email through some transport.
type Provider interface {
	// Send delivers a single message.
	Send(email *Email) error

	// SendWithTemplate renders the named template into the message body and
	// delivers it.
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// TemplateRenderer renders named HTML templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
