package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"jobhub-backend/internal/config"
	"jobhub-backend/internal/pkg/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// contactTemplate renders the inbound contact form into the
// notification body.
const contactTemplate = `<html>
<body>
  <h2>Potential IT Client: Inbound</h2>
  <table>
    <tr><td><b>Name</b></td><td>{{.FirstName}} {{.LastName}}</td></tr>
    {{if .CompanyName}}<tr><td><b>Company</b></td><td>{{.CompanyName}}</td></tr>{{end}}
    {{if .BusinessEmail}}<tr><td><b>Business email</b></td><td>{{.BusinessEmail}}</td></tr>{{end}}
    <tr><td><b>Phone</b></td><td>{{.PhoneNumber}}</td></tr>
  </table>
  <p>{{.Description}}</p>
</body>
</html>`

// ContactForm is the email-manager submission payload.
type ContactForm struct {
	FirstName     string `json:"firstName" validate:"required,max=128"`
	LastName      string `json:"lastName" validate:"required,max=128"`
	CompanyName   string `json:"companyName" validate:"omitempty,max=128"`
	BusinessEmail string `json:"businessEmail" validate:"omitempty,email"`
	PhoneNumber   string `json:"phoneNumber" validate:"required,max=32"`
	Description   string `json:"description" validate:"required,max=2048"`
}

// MailSender delivers a rendered message. Satisfied by the SendGrid
// client; stubbed in tests.
type MailSender interface {
	Send(ctx context.Context, subject, htmlBody string) error
}

// EmailService renders contact submissions and forwards them to the
// configured sender.
type EmailService struct {
	tmpl   *template.Template
	sender MailSender
}

// NewEmailService creates a new email service
func NewEmailService(sender MailSender) *EmailService {
	return &EmailService{
		tmpl:   template.Must(template.New("contact").Parse(contactTemplate)),
		sender: sender,
	}
}

// Render produces the HTML body for a contact submission.
func (s *EmailService) Render(form *ContactForm) (string, error) {
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, form); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Submit renders the form and sends the notification mail.
func (s *EmailService) Submit(ctx context.Context, form *ContactForm) error {
	body, err := s.Render(form)
	if err != nil {
		return err
	}

	if err := s.sender.Send(ctx, "Potential IT Client: Inbound", body); err != nil {
		logger.Get().Error().Err(err).Msg("contact mail delivery failed")
		return err
	}
	return nil
}

// sendGridSender delivers mail through the SendGrid API.
type sendGridSender struct {
	client *sendgrid.Client
	from   string
	to     string
}

// NewSendGridSender creates the production MailSender from config.
func NewSendGridSender(cfg *config.Config) MailSender {
	return &sendGridSender{
		client: sendgrid.NewSendClient(cfg.Mail.SendGridAPIKey),
		from:   cfg.Mail.FromEmail,
		to:     cfg.Mail.ToEmail,
	}
}

func (s *sendGridSender) Send(ctx context.Context, subject, htmlBody string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail("", s.from),
		subject,
		mail.NewEmail("", s.to),
		"",
		htmlBody,
	)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}
	return nil
}
