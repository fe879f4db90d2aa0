package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Fixed reminder content; the email is not parameterized by which event
// triggered it.
const (
	subject = "Snowboarding Parking Reminder"
	body    = "Reminder to get parking for the upcoming snowboarding weekend."
)

// Mailer sends the fixed reminder email over an authenticated, TLS-upgraded
// SMTP session.
type Mailer struct {
	client *mail.Client
	from   string
	to     string
}

// NewMailer creates a Mailer for the given SMTP relay. The connection is
// upgraded with STARTTLS (mandatory) and authenticated with the sender
// credentials; From is the authenticated user.
func NewMailer(host string, port int, username, password, recipient string) (*Mailer, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client for %s:%d: %w", host, port, err)
	}

	return &Mailer{
		client: client,
		from:   username,
		to:     recipient,
	}, nil
}

// message composes the reminder email.
func (m *Mailer) message() (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", m.from, err)
	}
	if err := msg.To(m.to); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", m.to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

// Send delivers the reminder to the configured recipient.
func (m *Mailer) Send(ctx context.Context) error {
	msg, err := m.message()
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}

	return nil
}
