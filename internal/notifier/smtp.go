package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"secret-santa-service/internal/config"
)

// SMTPSender отправляет письма через SMTP-сервер из конфигурации.
type SMTPSender struct {
	cfg config.MailConfig
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send открывает отдельное соединение на каждое письмо.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := m.AddToFormat(msg.ToName, msg.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	client, err := mail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (s *SMTPSender) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTimeout(s.cfg.Timeout),
		mail.WithTLSPolicy(s.tlsPolicy()),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	return opts
}

func (s *SMTPSender) tlsPolicy() mail.TLSPolicy {
	if s.cfg.UseTLS {
		return mail.TLSMandatory
	}
	return mail.NoTLS
}

// LogSender пишет письма в лог вместо отправки. Используется, если SMTP не настроен.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "mail delivery disabled, message logged",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}
