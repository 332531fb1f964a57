package service

import (
	"fmt"

	"physiodesk/config"
	"physiodesk/internal/domain/entity"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// Mailer delivers one-time verification codes. Usecases depend on this
// interface; the SendGrid implementation is wired in at bootstrap.
type Mailer interface {
	SendOTP(toEmail, code, purpose string) error
}

type SendGridMailer struct {
	cfg config.MailConfig
	log *logrus.Logger
}

func NewSendGridMailer(cfg config.MailConfig, log *logrus.Logger) *SendGridMailer {
	return &SendGridMailer{cfg: cfg, log: log}
}

func (m *SendGridMailer) SendOTP(toEmail, code, purpose string) error {
	if m.cfg.SendGridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not configured")
	}

	subject := "Your verification code"
	if purpose == entity.OTPPurposeReset {
		subject = "Your password reset code"
	}
	textContent := fmt.Sprintf("Your verification code is %s. It expires shortly; do not share it.", code)
	htmlContent := fmt.Sprintf("<p>Your verification code is <strong>%s</strong>.</p><p>It expires shortly; do not share it.</p>", code)

	from := mail.NewEmail(m.cfg.FromName, m.cfg.FromAddress)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, textContent, htmlContent)
	client := sendgrid.NewSendClient(m.cfg.SendGridAPIKey)

	resp, err := client.Send(message)
	if err != nil {
		m.log.Warnf("Failed to send OTP email to %s: %+v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		m.log.Warnf("SendGrid rejected OTP email to %s: status=%d body=%s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("failed to send email, status code: %d", resp.StatusCode)
	}

	return nil
}
