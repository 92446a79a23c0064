package notification

import (
	"fmt"

	"clinicbook/config"
	"clinicbook/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// EmailSender delivers transactional email.
type EmailSender interface {
	Send(to, subject, body string) error
}

// SendgridEmailSender sends mail through the SendGrid API.
type SendgridEmailSender struct {
	client *sendgrid.Client
	from   string
}

// NewSendgridEmailSender builds a sender from the configured API key.
func NewSendgridEmailSender() *SendgridEmailSender {
	return &SendgridEmailSender{
		client: sendgrid.NewSendClient(config.AppConfig.SendgridKey),
		from:   config.AppConfig.EmailSender,
	}
}

func (s *SendgridEmailSender) Send(to, subject, body string) error {
	from := mail.NewEmail("ClinicBook", s.from)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, body)

	resp, err := s.client.Send(message)
	if err != nil {
		utils.GetLogger().Error("Failed to send email", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		utils.GetLogger().Error("SendGrid rejected email",
			zap.String("to", to), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("sendgrid rejected email with status %d", resp.StatusCode)
	}
	return nil
}
