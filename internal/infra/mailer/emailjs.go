package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"boilerbites/internal/pkg/config"
	"boilerbites/internal/pkg/errs"
)

const sendPath = "/api/v1.0/email/send"

// ClaimEmail carries the template parameters for a claim confirmation.
type ClaimEmail struct {
	StudentName  string
	StudentEmail string
	ItemName     string
	VenueName    string
	Price        string
	OrderCode    string
}

// EmailJS posts transactional mail through the EmailJS REST API. The
// call is best-effort: callers log failures as advisories and never
// roll back the claim that triggered the send.
type EmailJS struct {
	cfg    config.MailerConfig
	client *http.Client
	logger *slog.Logger
}

func NewEmailJS(cfg config.MailerConfig, logger *slog.Logger) *EmailJS {
	return &EmailJS{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (m *EmailJS) SendClaimConfirmation(ctx context.Context, email ClaimEmail) error {
	if !m.cfg.Enabled() {
		m.logger.Debug("mailer not configured, skipping claim confirmation",
			"order_code", email.OrderCode)
		return nil
	}

	payload := sendRequest{
		ServiceID:  m.cfg.ServiceID,
		TemplateID: m.cfg.TemplateID,
		UserID:     m.cfg.PublicKey,
		TemplateParams: map[string]string{
			"student_name":  email.StudentName,
			"student_email": email.StudentEmail,
			"item_name":     email.ItemName,
			"venue_name":    email.VenueName,
			"price":         email.Price,
			"order_id":      email.OrderCode,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Mark(err, errs.ErrNotificationDeliveryFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.BaseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return errs.Mark(err, errs.ErrNotificationDeliveryFailed)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errs.Mark(err, errs.ErrNotificationDeliveryFailed)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Mark(
			errs.New("emailjs returned status "+resp.Status),
			errs.ErrNotificationDeliveryFailed,
		)
	}
	return nil
}
