package mailer

import (
	"context"
	"html"
	"log/slog"
	"strings"

	"carhire-booking/internal/pkg/config"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/shared"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrSendFailed = errs.Mark(errs.New("mail delivery failed"), errs.ErrExternalDependency)

// sender is the part of the SendGrid client we use.
type sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type SendGridMailer struct {
	client    sender
	fromEmail string
	fromName  string
}

func NewSendGridMailer(apiKey, fromEmail, fromName string) *SendGridMailer {
	return newSendGridMailer(sendgrid.NewSendClient(apiKey), fromEmail, fromName)
}

func newSendGridMailer(client sender, fromEmail, fromName string) *SendGridMailer {
	return &SendGridMailer{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, msg shared.Mail) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.ToEmail)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Body, toHTML(msg.Body))

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "sendgrid request"), ErrSendFailed)
	}
	if resp.StatusCode >= 400 {
		return errs.Mark(errs.Newf("sendgrid error: status %d, body: %s", resp.StatusCode, resp.Body), ErrSendFailed)
	}

	slog.Debug("mail sent", "to", msg.ToEmail, "subject", msg.Subject, "status", resp.StatusCode)
	return nil
}

// LogMailer is used when no SendGrid key is configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg shared.Mail) error {
	slog.Info("mail not sent, no provider configured",
		"to", msg.ToEmail,
		"subject", msg.Subject)
	return nil
}

type Mailer interface {
	Send(ctx context.Context, msg shared.Mail) error
}

func New(cfg config.MailConfig) Mailer {
	if cfg.SendGridAPIKey == "" {
		slog.Warn("SENDGRID_API_KEY not set, guest emails will only be logged")
		return LogMailer{}
	}
	return NewSendGridMailer(cfg.SendGridAPIKey, cfg.FromAddress, cfg.FromName)
}

func toHTML(body string) string {
	paragraphs := strings.Split(html.EscapeString(body), "\n\n")
	var b strings.Builder
	for _, p := range paragraphs {
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(p, "\n", "<br>"))
		b.WriteString("</p>")
	}
	return b.String()
}
