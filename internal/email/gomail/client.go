package gomail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/picklebay/picklebay/internal/email"
)

// SMTPService sends mail through a plain SMTP relay. This is the default
// provider; the DirectMail client in the aliyun package is the alternative.
type SMTPService struct {
	dialer    *gomail.Dialer
	fromEmail string
}

func NewSMTPService(host string, port int, username, password, fromEmail string) *SMTPService {
	return &SMTPService{
		dialer:    gomail.NewDialer(host, port, username, password),
		fromEmail: fromEmail,
	}
}

// SendMail implements email.Service. gomail has no context support, the
// caller's deadline only bounds the wait, not the dial.
func (s *SMTPService) SendMail(ctx context.Context, mail email.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromEmail, mail.From)
	m.SetHeader("To", mail.To)
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/html", string(mail.Body))
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", mail.To, err)
	}
	return nil
}
