package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer отправляет одноразовый код на email пользователя.
// Отправка трактуется как fire-and-forget коллаборатор: её провал
// не откатывает уже сохранённый код, а возвращается вызывающему.
type Mailer interface {
	SendOTPEmail(ctx context.Context, email, code string) error
}

// EmailService реализует Mailer поверх SMTP через gomail.
type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService создаёт сервис отправки писем.
func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) *EmailService {
	return &EmailService{
		dialer: gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword),
		from:   fromEmail,
	}
}

// SendOTPEmail отправляет письмо с кодом входа. Вызов ограничен контекстом:
// зависший SMTP не должен держать запрос дольше его дедлайна.
func (s *EmailService) SendOTPEmail(ctx context.Context, email, code string) error {
	if s.from == "" || s.dialer.Username == "" {
		return fmt.Errorf("email service: SMTP учётные данные не настроены")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your OTP for Login")
	m.SetBody("text/plain", fmt.Sprintf("Your OTP is %s. It will expire in 15 minutes.", code))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("email service: отправка прервана: %w", ctx.Err())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("email service: не удалось отправить письмо: %w", err)
		}
	}

	return nil
}
