// Package email delivers staff alert emails through the EmailJS REST API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"crm/config"
	"crm/internal/domain/service"
	"crm/internal/errors"
)

const (
	defaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"
	defaultTimeout  = 10 * time.Second
	maxErrorBody    = 4 << 10
)

// sendRequest is the EmailJS send payload. user_id carries the public key.
type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

type emailJSSender struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewEmailJSSender creates an EmailSender posting to the configured EmailJS endpoint
func NewEmailJSSender(cfg *config.Config, logger *slog.Logger) service.EmailSender {
	endpoint, timeout := defaultEndpoint, defaultTimeout
	if cfg.Email != nil {
		if cfg.Email.Endpoint != "" {
			endpoint = cfg.Email.Endpoint
		}
		if cfg.Email.Timeout > 0 {
			timeout = cfg.Email.Timeout
		}
	}

	return &emailJSSender{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send posts one templated email. Any non-2xx answer is an error carrying the response text.
func (s *emailJSSender) Send(ctx context.Context, req *service.EmailRequest) error {
	if req == nil || req.ServiceID == "" || req.TemplateID == "" || req.PublicKey == "" {
		return errors.New("email service, template and public key are required")
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      req.ServiceID,
		TemplateID:     req.TemplateID,
		UserID:         req.PublicKey,
		TemplateParams: req.TemplateParams,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "email request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return errors.Errorf("email service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(text)))
	}

	s.logger.DebugContext(ctx, "Alert email sent",
		slog.String("to", req.TemplateParams["to_email"]),
		slog.String("template_id", req.TemplateID),
	)

	return nil
}
