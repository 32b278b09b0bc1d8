// Package mail sends the operator a plain-text note for each new
// order. Delivery is a single best-effort attempt: the order is
// already persisted before a send starts, and a failed send is only
// logged.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/models"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer delivers through a configured SMTP relay.
type SMTPMailer struct {
	client *gomail.Client
	from   string
}

func NewSMTPMailer(host string, port int, user, pass, from string) (*SMTPMailer, error) {
	client, err := gomail.NewClient(host,
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(user),
		gomail.WithPassword(pass),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("configure smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: from}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// LogMailer is the no-SMTP fallback: it logs what would have been sent
// so local setups still see order traffic.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, to, subject, body string) error {
	slog.Info("No SMTP configured, email skipped", "to", to, "subject", subject)
	return nil
}

// OrderSubject and OrderBody build the operator notification for a
// newly submitted order.
func OrderSubject(o *models.Order) string {
	return fmt.Sprintf("CarryLuxe - New Order #%d", o.ID)
}

func OrderBody(o *models.Order) string {
	return fmt.Sprintf(`New order received:

Order ID: %d
Product: %s
Price: %g
Name: %s
Email: %s
Phone: %s
Address: %s
Note: %s
Date: %s`,
		o.ID,
		o.Product.Name,
		o.Product.Price,
		o.Name,
		o.Email,
		o.Phone,
		o.Address,
		o.Note,
		o.Date.Format(time.RFC3339),
	)
}
