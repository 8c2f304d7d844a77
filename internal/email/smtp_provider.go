package email

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	config    Config
	templates *TemplateManager
	dialer    *gomail.Dialer
}

func NewSMTPProvider(config Config) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, err
	}

	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if config.UseTLS {
		dialer.TLSConfig = &tls.Config{ServerName: config.Host}
	}

	return &SMTPProvider{
		config:    config,
		templates: tm,
		dialer:    dialer,
	}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.Body != "" {
		m.SetBody("text/plain", email.Body)
	}
	if email.HTMLBody != "" {
		if email.Body != "" {
			m.AddAlternative("text/html", email.HTMLBody)
		} else {
			m.SetBody("text/html", email.HTMLBody)
		}
	}

	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	if data.CompanyName == "" {
		data.CompanyName = p.config.FromName
	}
	if data.SupportEmail == "" {
		data.SupportEmail = p.config.FromEmail
	}

	htmlBody, err := p.templates.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return p.Send(&Email{
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	})
}

func (p *SMTPProvider) SendLoginCode(to, code string, ttlMinutes int) error {
	data := TemplateData{
		Subject: "Your sign-in code",
		Code:    code,
		Message: fmt.Sprintf("The code is valid for %d minutes.", ttlMinutes),
	}
	return p.SendTemplate([]string{to}, "Your sign-in code", "login_code", data)
}

func (p *SMTPProvider) SendPasswordResetCode(to, code string, ttlMinutes int) error {
	data := TemplateData{
		Subject: "Password reset code",
		Code:    code,
		Message: fmt.Sprintf("The code is valid for %d minutes.", ttlMinutes),
	}
	return p.SendTemplate([]string{to}, "Password reset code", "password_reset", data)
}

func (p *SMTPProvider) SendApplicationConfirmation(to, jobTitle, organizationName string) error {
	data := TemplateData{
		Subject: "Application received",
		Message: fmt.Sprintf("Your application for %q at %s was submitted.", jobTitle, organizationName),
	}
	return p.SendTemplate([]string{to}, "Application received", "application_confirmation", data)
}

func (p *SMTPProvider) Validate() error {
	return p.config.Validate()
}
