package email

import "fmt"

// Provider delivers notification messages. All sends are at-most-once:
// callers treat failures as log-and-continue, never as a reason to roll
// back state.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendTemplate renders a named template and delivers it.
	SendTemplate(to []string, subject, templateName string, data TemplateData) error

	// SendLoginCode delivers a candidate's one-time sign-in code.
	SendLoginCode(to, code string, ttlMinutes int) error

	// SendPasswordResetCode delivers an organization's reset code.
	SendPasswordResetCode(to, code string, ttlMinutes int) error

	// SendApplicationConfirmation confirms a submitted job application.
	SendApplicationConfirmation(to, jobTitle, organizationName string) error

	// Validate checks the provider configuration.
	Validate() error
}

// Validate checks SMTP transport settings.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.Port)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}
