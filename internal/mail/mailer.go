package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/kenf/property-management/pkg/config"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Mailer sends templated HTML email over SMTP.
type Mailer struct {
	dialer    *gomail.Dialer
	from      string
	appName   string
	templates *template.Template
}

func NewMailer(cfg *config.SMTPConfig, appName string) (*Mailer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing email templates: %w", err)
	}

	return &Mailer{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:      cfg.From,
		appName:   appName,
		templates: tmpl,
	}, nil
}

// Send renders the named template with data and delivers it to one
// recipient. The caller decides how to treat failure; delivery is never
// part of a request's success contract.
func (m *Mailer) Send(to, subject, templateName string, data any) error {
	body, err := m.Render(templateName, data)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending email to %s: %w", to, err)
	}
	return nil
}

// Render produces the HTML body for the named template.
func (m *Mailer) Render(templateName string, data any) (string, error) {
	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", templateName, err)
	}
	return buf.String(), nil
}

// AppName returns the configured application display name.
func (m *Mailer) AppName() string {
	return m.appName
}
