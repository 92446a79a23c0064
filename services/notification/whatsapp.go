package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"clinicbook/config"
	"clinicbook/utils"

	"go.uber.org/zap"
)

// WhatsAppSender delivers WhatsApp messages.
type WhatsAppSender interface {
	Send(phoneNumber, message string) error
}

// HTTPWhatsAppSender posts messages to the configured WhatsApp business API.
type HTTPWhatsAppSender struct {
	client *http.Client
}

func NewHTTPWhatsAppSender() *HTTPWhatsAppSender {
	return &HTTPWhatsAppSender{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPWhatsAppSender) Send(phoneNumber, message string) error {
	logger := utils.GetLogger()

	apiURL := config.AppConfig.WhatsAppAPIURL
	if apiURL == "" {
		// No provider configured; log the outgoing message so development
		// flows stay testable without an account.
		logger.Sugar().Infof("Sending WhatsApp message to %s: %s", phoneNumber, message)
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"to":   phoneNumber,
		"body": message,
	})
	if err != nil {
		return fmt.Errorf("failed to encode WhatsApp payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build WhatsApp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+config.AppConfig.WhatsAppAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error("WhatsApp request failed", zap.String("to", phoneNumber), zap.Error(err))
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		logger.Error("WhatsApp API rejected message",
			zap.String("to", phoneNumber), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("whatsapp API returned status %d", resp.StatusCode)
	}
	return nil
}
