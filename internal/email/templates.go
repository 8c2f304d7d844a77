package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Built-in HTML bodies. Kept inline so the binary needs no template
// directory at runtime.
var builtinTemplates = map[string]string{
	"login_code": `
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Your sign-in code</h2>
  <p>Use this code to sign in to {{.CompanyName}}:</p>
  <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.Code}}</p>
  <p>{{.Message}}</p>
  <p>If you did not request this code, you can ignore this email.</p>
</body>
</html>`,

	"password_reset": `
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Password reset</h2>
  <p>Use this code to reset your {{.CompanyName}} password:</p>
  <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.Code}}</p>
  <p>{{.Message}}</p>
  <p>If you did not request a reset, no action is needed.</p>
</body>
</html>`,

	"application_confirmation": `
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Application received</h2>
  <p>{{.Message}}</p>
  <p>We forwarded your application to the hiring team. You can track its
  progress from your dashboard.</p>
</body>
</html>`,

	"notification": `
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.Subject}}</h2>
  <p>{{.Message}}</p>
</body>
</html>`,
}

// TemplateManager renders the built-in HTML bodies.
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}
	for name, body := range builtinTemplates {
		t, err := template.New(name).Parse(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %q: %w", name, err)
		}
		tm.templates[name] = t
	}
	return tm, nil
}

// Render executes the named template with the data.
func (tm *TemplateManager) Render(name string, data TemplateData) (string, error) {
	t, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return buf.String(), nil
}
