package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/academiq/academiq/internal/domain/model"
	"github.com/academiq/academiq/internal/i18n"
)

// Sender delivers one composed message. Declared as an interface so tests can
// substitute the SMTP client.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPNotifier emails the site operator about new submissions. Delivery is
// best-effort: one attempt, bounded by the configured timeout, with every
// failure logged and swallowed so the submission path never observes it.
type SMTPNotifier struct {
	sender  Sender
	from    string
	to      string
	timeout time.Duration
	logger  *slog.Logger
}

// NewSMTPNotifier builds the notifier and its SMTP client.
func NewSMTPNotifier(host string, port int, username, password, from, to string, timeout time.Duration, logger *slog.Logger) (*SMTPNotifier, error) {
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTimeout(timeout),
	}
	if username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
	}

	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPNotifier{
		sender:  client,
		from:    from,
		to:      to,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// OrderReceived reports a new order request.
func (n *SMTPNotifier) OrderReceived(ctx context.Context, order *model.OrderRequest) {
	attachment := "No"
	if order.Attachment != "" {
		attachment = "Yes"
	}
	body := fmt.Sprintf(
		"New order received:\n\n"+
			"Order Number: %s\n"+
			"Name: %s\n"+
			"Email: %s\n"+
			"Phone: %s\n"+
			"Service: %s\n\n"+
			"Project Details:\n%s\n\n"+
			"Attachment: %s",
		order.Number(), order.FullName, order.Email, order.Phone,
		i18n.ServiceLabel(string(order.ServiceType)), order.Message, attachment,
	)
	n.send(ctx, fmt.Sprintf("New Order Request #%s", order.Number()), body)
}

// ContactReceived reports a new contact message.
func (n *SMTPNotifier) ContactReceived(ctx context.Context, msg *model.ContactMessage) {
	phone := msg.Phone
	if phone == "" {
		phone = "Not provided"
	}
	body := fmt.Sprintf(
		"New contact message received:\n\n"+
			"Name: %s\n"+
			"Email: %s\n"+
			"Phone: %s\n"+
			"Service Type: %s\n\n"+
			"Message:\n%s",
		msg.FullName, msg.Email, phone,
		i18n.ServiceLabel(string(msg.ServiceType)), msg.Message,
	)
	n.send(ctx, fmt.Sprintf("New Contact Message: %s", msg.Subject), body)
}

func (n *SMTPNotifier) send(ctx context.Context, subject, body string) {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		n.logger.Warn("notification dropped", slog.String("reason", "compose from"), slog.String("error", err.Error()))
		return
	}
	if err := msg.To(n.to); err != nil {
		n.logger.Warn("notification dropped", slog.String("reason", "compose to"), slog.String("error", err.Error()))
		return
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	sendCtx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.sender.DialAndSendWithContext(sendCtx, msg); err != nil {
		n.logger.Warn("notification failed", slog.String("subject", subject), slog.String("error", err.Error()))
	}
}

// DisabledNotifier drops every notification. Installed when SMTP settings or
// the admin recipient are missing, which is reported once at startup.
type DisabledNotifier struct{}

func (DisabledNotifier) OrderReceived(context.Context, *model.OrderRequest) {}

func (DisabledNotifier) ContactReceived(context.Context, *model.ContactMessage) {}
