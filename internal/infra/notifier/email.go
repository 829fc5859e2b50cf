package notifier

import (
	"context"
	"log/slog"

	"library-api/internal/pkg/config"
	"library-api/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

// EmailNotifier delivers the overdue-loan message over SMTP. All recipients
// go out in a single mail, mirroring the batch contract of the scanner.
type EmailNotifier struct {
	cfg    config.MailConfig
	logger *slog.Logger
}

func NewEmailNotifier(cfg config.MailConfig, logger *slog.Logger) *EmailNotifier {
	return &EmailNotifier{cfg: cfg, logger: logger}
}

func (n *EmailNotifier) SendBatch(ctx context.Context, subject, message string, recipients []string) error {
	if len(recipients) == 0 {
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return errs.Wrap(err, "invalid sender address")
	}
	if err := msg.To(recipients...); err != nil {
		return errs.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, message)

	client, err := mail.NewClient(n.cfg.Host,
		mail.WithPort(n.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.Username),
		mail.WithPassword(n.cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return errs.Wrap(err, "failed to create smtp client")
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}

	n.logger.Info("overdue notification sent", slog.Int("recipients", len(recipients)))
	return nil
}
