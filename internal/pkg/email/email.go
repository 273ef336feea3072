package email

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Sender defines the outbound email collaborator. Implementations are
// best-effort: callers log failures and move on.
type Sender interface {
	SendEmail(ctx context.Context, to, subject, text, html string) error
	SendBulk(ctx context.Context, recipients []string, subject, text, html string) []SendResult
}

// SendResult is the per-recipient outcome of a bulk send
type SendResult struct {
	To  string
	Err error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// SMTPSender sends mail over SMTP via gomail
type SMTPSender struct {
	config SMTPConfig
	dialer *gomail.Dialer
	logger zerolog.Logger
}

// NewSMTPSender creates a new SMTPSender
func NewSMTPSender(config SMTPConfig, logger zerolog.Logger) *SMTPSender {
	return &SMTPSender{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		logger: logger,
	}
}

// configured reports whether SMTP credentials are present. When they are not,
// sends are logged instead of dispatched so development setups keep working.
func (s *SMTPSender) configured() bool {
	return s.config.Host != "" && s.config.Username != "" && s.config.Password != ""
}

// SendEmail sends a single message. The html body is preferred when present,
// with the plain text part as the alternative.
func (s *SMTPSender) SendEmail(ctx context.Context, to, subject, text, html string) error {
	if !s.configured() {
		s.logger.Warn().
			Str("to", to).
			Str("subject", subject).
			Msg("SMTP not configured, mail logged instead of sent")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	if html != "" {
		m.AddAlternative("text/html", html)
	}

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email send cancelled: %w", ctx.Err())
	}
}

// SendBulk sends individually per recipient and collects per-recipient
// success/failure without aborting the batch.
func (s *SMTPSender) SendBulk(ctx context.Context, recipients []string, subject, text, html string) []SendResult {
	results := make([]SendResult, 0, len(recipients))
	for _, to := range recipients {
		sendCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		err := s.SendEmail(sendCtx, to, subject, text, html)
		cancel()
		if err != nil {
			s.logger.Warn().Err(err).Str("to", to).Msg("Bulk email recipient failed")
		}
		results = append(results, SendResult{To: to, Err: err})
	}
	return results
}
