package email

import (
	"fmt"

	"github.com/sasank-sasi/Vertx/internal/models"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SenderConfig holds SMTP relay settings. Port 587 with STARTTLS is the
// expected setup; the dialer negotiates STARTTLS automatically on that port.
type SenderConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

// Sender delivers drafts over an authenticated SMTP session.
type Sender struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewSender creates an SMTP sender. Missing credentials are a construction
// error so the dependent pipeline is never built half-configured.
func NewSender(cfg SenderConfig, logger *zap.Logger) (*Sender, error) {
	if cfg.Sender == "" || cfg.Password == "" {
		return nil, fmt.Errorf("email credentials are required")
	}

	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}

	logger.Info("SMTP sender initialized",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("sender", cfg.Sender))

	return &Sender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Sender, cfg.Password),
		from:   cfg.Sender,
		logger: logger,
	}, nil
}

// Send delivers one draft. Authentication and transmission failures come
// back as errors; the caller converts them to a send-success flag.
func (s *Sender) Send(draft models.EmailDraft, recipient string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", draft.Subject)
	msg.SetBody("text/plain", draft.Body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		s.logger.Error("Failed to send email",
			zap.String("recipient", recipient),
			zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
