package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	subject string
	body    string
	err     error
}

func (s *stubSender) Send(_ context.Context, subject, htmlBody string) error {
	s.subject = subject
	s.body = htmlBody
	return s.err
}

func sampleForm() *ContactForm {
	return &ContactForm{
		FirstName:     "Jane",
		LastName:      "Doe",
		CompanyName:   "Acme Corp",
		BusinessEmail: "jane@acme.com",
		PhoneNumber:   "+1 555 0100",
		Description:   "We need help migrating our office network.",
	}
}

func TestRenderContactForm(t *testing.T) {
	svc := NewEmailService(&stubSender{})

	body, err := svc.Render(sampleForm())
	require.NoError(t, err)

	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, "Acme Corp")
	assert.Contains(t, body, "jane@acme.com")
	// html/template escapes the leading plus sign.
	assert.Contains(t, body, "&#43;1 555 0100")
	assert.Contains(t, body, "We need help migrating our office network.")
}

func TestRenderOmitsEmptyOptionalFields(t *testing.T) {
	svc := NewEmailService(&stubSender{})

	form := sampleForm()
	form.CompanyName = ""
	form.BusinessEmail = ""

	body, err := svc.Render(form)
	require.NoError(t, err)
	assert.NotContains(t, body, "Company")
	assert.NotContains(t, body, "Business email")
}

func TestSubmit(t *testing.T) {
	sender := &stubSender{}
	svc := NewEmailService(sender)

	require.NoError(t, svc.Submit(context.Background(), sampleForm()))
	assert.Equal(t, "Potential IT Client: Inbound", sender.subject)
	assert.Contains(t, sender.body, "Jane Doe")
}

func TestSubmitPropagatesSenderFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("provider down")}
	svc := NewEmailService(sender)

	err := svc.Submit(context.Background(), sampleForm())
	assert.EqualError(t, err, "provider down")
}
