// internal/workers/notification_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/hibiken/asynq"

	"github.com/verdeo/plantrent-be/internal/pkg/config"
)

const (
	TypeExchangeCompleted = "exchange:completed"
	TypeStockReceived     = "stock:received"
	TypeSendEmail         = "email:send"
	TypeCleanupAuditLog   = "cleanup:audit_log"
)

// ExchangeCompletedPayload is enqueued after an exchange visit is applied.
// Consumers get a summary, not the authoritative record; that lives in the
// database and the audit log.
type ExchangeCompletedPayload struct {
	ExchangeRequestID string    `json:"exchange_request_id"`
	CustomerID        string    `json:"customer_id"`
	CompletedBy       string    `json:"completed_by"`
	RemovedLines      int       `json:"removed_lines"`
	InstalledLines    int       `json:"installed_lines"`
	CompletedAt       time.Time `json:"completed_at"`
}

// StockReceivedPayload is enqueued when a delivery is booked into stock.
type StockReceivedPayload struct {
	PlantTypeID string `json:"plant_type_id"`
	PlantName   string `json:"plant_name"`
	Quantity    int    `json:"quantity"`
	ActorID     string `json:"actor_id"`
}

// NotificationProcessor handles post-completion notifications
type NotificationProcessor struct {
	config *config.Config
	logger *slog.Logger
}

// NewNotificationProcessor creates a new notification processor
func NewNotificationProcessor(config *config.Config, logger *slog.Logger) *NotificationProcessor {
	return &NotificationProcessor{
		config: config,
		logger: logger.With(slog.String("processor", "notification")),
	}
}

// HandleExchangeCompleted notifies operations about a completed exchange
func (p *NotificationProcessor) HandleExchangeCompleted(ctx context.Context, t *asynq.Task) error {
	var payload ExchangeCompletedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "exchange completed",
		slog.String("exchange_request_id", payload.ExchangeRequestID),
		slog.String("customer_id", payload.CustomerID),
		slog.Int("removed_lines", payload.RemovedLines),
		slog.Int("installed_lines", payload.InstalledLines))

	subject := fmt.Sprintf("Exchange %s completed", payload.ExchangeRequestID)
	body := fmt.Sprintf(
		"Exchange %s for customer %s was completed by %s at %s.\nRemoved lines: %d\nInstalled lines: %d\n",
		payload.ExchangeRequestID, payload.CustomerID, payload.CompletedBy,
		payload.CompletedAt.Format(time.RFC3339),
		payload.RemovedLines, payload.InstalledLines,
	)

	return p.sendEmail(ctx, "ops@verdeo.example", subject, body)
}

// HandleStockReceived notifies operations about a booked delivery
func (p *NotificationProcessor) HandleStockReceived(ctx context.Context, t *asynq.Task) error {
	var payload StockReceivedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "stock received",
		slog.String("plant_type_id", payload.PlantTypeID),
		slog.String("plant_name", payload.PlantName),
		slog.Int("quantity", payload.Quantity))

	subject := fmt.Sprintf("Delivery booked: %s", payload.PlantName)
	body := fmt.Sprintf("%d units of %s (%s) were booked into available stock.\n",
		payload.Quantity, payload.PlantName, payload.PlantTypeID)

	return p.sendEmail(ctx, "ops@verdeo.example", subject, body)
}

// SendEmail sends generic email notifications
func (p *NotificationProcessor) SendEmail(ctx context.Context, t *asynq.Task) error {
	var payload map[string]interface{}
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	to := payload["to"].(string)
	subject := payload["subject"].(string)
	body := payload["body"].(string)

	return p.sendEmail(ctx, to, subject, body)
}

func (p *NotificationProcessor) sendEmail(ctx context.Context, to, subject, body string) error {
	p.logger.InfoContext(ctx, "sending email",
		slog.String("to", to),
		slog.String("subject", subject))

	// In development, just log the email
	if p.config.App.Environment == "development" {
		p.logger.InfoContext(ctx, "email would be sent",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.String("body", body))
		return nil
	}

	from := "noreply@verdeo.example"
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		from, to, subject, body,
	))

	// Send via SMTP (configure your SMTP settings)
	auth := smtp.PlainAuth("", "", "", "smtp.example.com")
	err := smtp.SendMail("smtp.example.com:587", auth, from, []string{to}, msg)

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	p.logger.InfoContext(ctx, "email sent successfully")
	return nil
}
