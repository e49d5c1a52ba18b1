// Package mailer delivers transactional mail (OTP codes). Delivery is a
// single attempt with no queueing or retry; callers see every failure.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

// Sender attempts one delivery to a destination address and reports the result.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New picks a sender from config. Without an SMTP host the log sender is
// used, which records deliveries without sending anything.
func New(config utils.EmailConfig, log *zap.Logger) Sender {
	if config.Host == "" {
		log.Warn("SMTP host not configured, mail delivery disabled")
		return &LogSender{log: log}
	}
	return &SMTPSender{config: config, log: log}
}

// SMTPSender delivers mail over plain SMTP with AUTH PLAIN.
type SMTPSender struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)

	var msg strings.Builder
	msg.WriteString("From: " + s.config.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(addr, auth, s.config.From, []string{to}, []byte(msg.String())); err != nil {
		s.log.Error("Failed to send mail",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	s.log.Info("Mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// LogSender records that a delivery would have happened. The body is never
// logged, it may contain a plaintext OTP code.
type LogSender struct {
	log *zap.Logger
}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	s.log.Info("Mail delivery skipped (no SMTP configured)",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
