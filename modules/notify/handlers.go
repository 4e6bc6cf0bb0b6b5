package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/smtp"
	"net/url"
	"strings"
	"time"

	"guest-order-api/core/config"
	"guest-order-api/core/constants"
	"guest-order-api/core/logger"

	"github.com/hibiken/asynq"
)

type Handlers struct {
	cfg  *config.Config
	http *http.Client
}

func NewHandlers(cfg *config.Config) *Handlers {
	return &Handlers{
		cfg:  cfg,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Register attaches all notification handlers to the worker mux.
func (h *Handlers) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskOrderSMS, h.HandleOrderSMS)
	mux.HandleFunc(constants.TaskVerificationEmail, h.HandleVerificationEmail)
}

// HandleOrderSMS sends the staff notification through the Twilio Messages
// API as a form-encoded POST.
func (h *Handlers) HandleOrderSMS(ctx context.Context, task *asynq.Task) error {
	var payload OrderSMSPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal order sms payload: %w", err)
	}

	tw := h.cfg.Twilio
	if tw.AccountSID == "" || tw.AuthToken == "" {
		logger.Warn("Notify:HandleOrderSMS:NotConfigured", "order_id", payload.OrderID)
		return nil
	}

	body := buildOrderMessage(payload)

	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", tw.AccountSID)
	form := url.Values{}
	form.Set("To", payload.Recipient)
	form.Set("From", tw.FromNumber)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(tw.AccountSID, tw.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := h.http.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("twilio responded %d: %s", resp.StatusCode, string(data))
	}

	logger.Info("Notify:HandleOrderSMS:Sent", "order_id", payload.OrderID, "recipient", payload.Recipient)
	return nil
}

// buildOrderMessage renders the staff SMS text.
func buildOrderMessage(p OrderSMSPayload) string {
	var location string
	switch p.Location {
	case "room":
		location = "Zimmer " + p.RoomNumber
	case "pool":
		location = "Pool"
	default:
		location = "Bar"
	}

	return fmt.Sprintf(
		"Neue Bestellung #%s!\n\nBestellung:\n%s\n\nLieferort: %s\nName: %s %s\nTel: %s",
		p.OrderNumber,
		strings.Join(p.ItemLines, "\n"),
		location,
		p.FirstName, p.LastName,
		p.GuestPhone,
	)
}

// HandleVerificationEmail mails the signup verification link over SMTP.
func (h *Handlers) HandleVerificationEmail(ctx context.Context, task *asynq.Task) error {
	var payload VerificationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal verification email payload: %w", err)
	}

	cfg := h.cfg.SMTP
	if cfg.Host == "" {
		logger.Warn("Notify:HandleVerificationEmail:NotConfigured", "email", payload.Email)
		return nil
	}

	link := fmt.Sprintf("%s/api/v1/auth/verify?token=%s", h.cfg.Server.PublicURL, url.QueryEscape(payload.Token))
	body := strings.NewReplacer(
		"{tenant_name}", payload.TenantName,
		"{verification_link}", link,
	).Replace(verificationTemplate)

	msg := strings.Join([]string{
		"From: " + cfg.From,
		"To: " + payload.Email,
		"Subject: Verify your account for " + payload.TenantName,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, cfg.From, []string{payload.Email}, []byte(msg)); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}

	logger.Info("Notify:HandleVerificationEmail:Sent", "email", payload.Email)
	return nil
}

const verificationTemplate = `Welcome to {tenant_name}!

Please confirm your email address to activate your hotel:

{verification_link}

The link is valid for 24 hours. If you did not sign up, ignore this message.`
