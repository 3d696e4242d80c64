package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// Service validates contact submissions and mails them to the team
type Service struct {
	Sender Sender
	From   string
	To     string
	// Clock stamps outbound messages; time.Now when nil
	Clock func() time.Time
}

// Submit validates s and sends it, returning the Message-ID. Validation
// failures are *ValidationError; transport failures wrap ErrTransport.
// Nothing is retried.
func (svc *Service) Submit(ctx context.Context, s Submission) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	now := time.Now
	if svc.Clock != nil {
		now = svc.Clock
	}
	m, err := Compose(s, svc.From, svc.To, now())
	if err != nil {
		return "", err
	}

	if err := svc.Sender.Send(ctx, m); err != nil {
		log.Errorf("contact message %s from %s not sent: %v", m.ID, s.Email, err)
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	log.Infof("contact message %s sent to %s", m.ID, svc.To)
	return m.ID, nil
}

// Verify checks the mail transport
func (svc *Service) Verify(ctx context.Context) error {
	if err := svc.Sender.Verify(ctx); err != nil {
		log.Warnf("mail transport check failed: %v", err)
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return nil
}
