package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// Sender delivers composed messages
type Sender interface {
	Send(ctx context.Context, m *Message) error
	// Verify checks that the transport accepts a connection and login
	Verify(ctx context.Context) error
}

// SMTPConfig holds the outbound mail server settings
type SMTPConfig struct {
	Host string
	Port int
	// Secure uses implicit TLS (port 465); otherwise STARTTLS is used when
	// the server offers it
	Secure   bool
	User     string
	Password string
	Timeout  time.Duration
}

// SMTPSender sends mail through an SMTP server
type SMTPSender struct {
	config SMTPConfig
}

// NewSMTPSender creates a sender for config
func NewSMTPSender(config SMTPConfig) *SMTPSender {
	if config.Timeout <= 0 {
		config.Timeout = 15 * time.Second
	}
	return &SMTPSender{config: config}
}

// Config returns the sender settings
func (s *SMTPSender) Config() SMTPConfig {
	return s.config
}

func (s *SMTPSender) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.config.Port),
		mail.WithTimeout(s.config.Timeout),
	}
	if s.config.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if s.config.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.config.User),
			mail.WithPassword(s.config.Password),
		)
	}
	c, err := mail.NewClient(s.config.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}
	return c, nil
}

// Send delivers m
func (s *SMTPSender) Send(ctx context.Context, m *Message) error {
	msg, err := toMsg(m)
	if err != nil {
		return err
	}
	c, err := s.client()
	if err != nil {
		return err
	}
	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail via %s:%d: %w", s.config.Host, s.config.Port, err)
	}
	return nil
}

// Verify dials the server and closes the connection again
func (s *SMTPSender) Verify(ctx context.Context) error {
	c, err := s.client()
	if err != nil {
		return err
	}
	if err := c.DialWithContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to %s:%d: %w", s.config.Host, s.config.Port, err)
	}
	return c.Close()
}

func toMsg(m *Message) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return nil, fmt.Errorf("failed to set sender %q: %w", m.From, err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("failed to set recipient %q: %w", m.To, err)
	}
	if m.ReplyTo != "" {
		if err := msg.ReplyTo(m.ReplyTo); err != nil {
			return nil, fmt.Errorf("failed to set reply-to %q: %w", m.ReplyTo, err)
		}
	}
	msg.Subject(m.Subject)
	msg.SetMessageIDWithValue(m.ID)
	msg.SetDateWithValue(m.Date)
	msg.SetBodyString(mail.TypeTextPlain, m.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, m.HTML)
	return msg, nil
}
