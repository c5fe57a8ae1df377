package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// sendTimeout bounds each dispatch so a hanging transport cannot leak a
// goroutine indefinitely.
const sendTimeout = 15 * time.Second

// Message is the two-field payload every notification carries.
type Message struct {
	Subject string
	Body    string
}

// Dispatcher delivers a message to a recipient on a best-effort basis.
// Delivery failure never reaches the caller; it is only logged.
type Dispatcher interface {
	Notify(msg Message, recipient string)
}

// SMTPConfig holds the mail transport settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPDispatcher sends notifications over SMTP. Each Notify call returns
// immediately; the send runs in a detached goroutine with a bounded timeout.
type SMTPDispatcher struct {
	cfg    SMTPConfig
	logger *zap.Logger
}

// NewSMTPDispatcher creates the production Dispatcher.
func NewSMTPDispatcher(cfg SMTPConfig, logger *zap.Logger) *SMTPDispatcher {
	return &SMTPDispatcher{cfg: cfg, logger: logger}
}

// Notify dispatches the message to the recipient and returns without waiting
// for delivery. An empty recipient skips the send entirely.
func (d *SMTPDispatcher) Notify(msg Message, recipient string) {
	if recipient == "" {
		d.logger.Warn("Notification skipped: no recipient", zap.String("subject", msg.Subject))
		return
	}

	dispatchID := uuid.New().String()
	go d.send(dispatchID, msg, recipient)
}

func (d *SMTPDispatcher) send(dispatchID string, msg Message, recipient string) {
	logger := d.logger.With(
		zap.String("dispatchId", dispatchID),
		zap.String("recipient", recipient),
		zap.String("subject", msg.Subject),
	)

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	client, err := mail.NewClient(d.cfg.Host,
		mail.WithPort(d.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(d.cfg.Username),
		mail.WithPassword(d.cfg.Password),
	)
	if err != nil {
		logger.Error("Failed to initialize mail transport", zap.Error(err))
		return
	}

	// Check the transport is reachable before sending. Failures are logged
	// only; the notification is simply lost.
	if err := client.DialWithContext(ctx); err != nil {
		logger.Error("Mail transport unreachable", zap.Error(err))
		return
	}
	logger.Debug("Mail transport ready")
	defer func() {
		if err := client.Close(); err != nil {
			logger.Debug("Failed to close mail transport", zap.Error(err))
		}
	}()

	m := mail.NewMsg()
	if err := m.From(d.cfg.From); err != nil {
		logger.Error("Failed to set From address", zap.Error(err))
		return
	}
	if err := m.To(recipient); err != nil {
		logger.Error("Failed to set To address", zap.Error(err))
		return
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, fmt.Sprintf("<p>%s</p>", msg.Body))

	if err := client.Send(m); err != nil {
		logger.Error("Failed to send notification", zap.Error(err))
		return
	}
	logger.Info("Notification sent")
}
