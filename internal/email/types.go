package email

// Email is a single outbound message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData is the payload rendered into the HTML templates.
type TemplateData struct {
	UserName     string
	Subject      string
	Message      string
	Code         string
	ActionURL    string
	ActionText   string
	SupportEmail string
	CompanyName  string
}

// Config holds SMTP transport settings.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
}
