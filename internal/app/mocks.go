package app

import "joblink_backend/internal/email"

// MockEmailProvider is used for tests and local development when SMTP
// is not configured.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error { return nil }
func (m *MockEmailProvider) SendTemplate(to []string, subject, templateName string, data email.TemplateData) error {
	return nil
}
func (m *MockEmailProvider) SendLoginCode(to, code string, ttlMinutes int) error         { return nil }
func (m *MockEmailProvider) SendPasswordResetCode(to, code string, ttlMinutes int) error { return nil }
func (m *MockEmailProvider) SendApplicationConfirmation(to, jobTitle, organizationName string) error {
	return nil
}
func (m *MockEmailProvider) Validate() error { return nil }
