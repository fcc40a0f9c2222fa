package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer is the surface the newsletter handler depends on. Sends are
// synchronous and never retried; the caller reports the outcome.
type Mailer interface {
	SendThankYou(to string) error
}

type SendGridMailer struct {
	apiKey string
	sender string
}

func NewSendGridMailer(apiKey, sender string) *SendGridMailer {
	return &SendGridMailer{apiKey: apiKey, sender: sender}
}

// SendThankYou delivers the fixed newsletter thank-you note.
func (m *SendGridMailer) SendThankYou(to string) error {
	from := mail.NewEmail("The Music Studio", m.sender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(
		from,
		"Thank You for Subscribing",
		recipient,
		"Thank you for subscribing to our newsletter!",
		"",
	)

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: unexpected status %d", response.StatusCode)
	}
	return nil
}
