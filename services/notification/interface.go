package notification

// NotificationService delivers messages to patients and doctors over the
// channels the clinic supports.
type NotificationService interface {
	SendEmail(to, subject, body string) error
	SendWhatsApp(phoneNumber, message string) error
}

// DefaultNotificationService fans out to the configured channel senders.
type DefaultNotificationService struct {
	Email    EmailSender
	WhatsApp WhatsAppSender
}

func (s *DefaultNotificationService) SendEmail(to, subject, body string) error {
	return s.Email.Send(to, subject, body)
}

func (s *DefaultNotificationService) SendWhatsApp(phoneNumber, message string) error {
	return s.WhatsApp.Send(phoneNumber, message)
}
