package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/samarpantrust/outreach/internal/config"
	"github.com/samarpantrust/outreach/internal/service/submission"
)

// Notifier implements submission.Notifier by mailing the configured staff
// recipients. Replies go to the submitter.
type Notifier struct {
	mailer    Mailer
	renderer  *Renderer
	fromName  string
	fromEmail string
	to        []string
}

var _ submission.Notifier = (*Notifier)(nil)

// NewNotifier returns a Notifier sending through m.
func NewNotifier(m Mailer, siteName string, cfg config.NotifyConfig) (*Notifier, error) {
	if len(cfg.To) == 0 {
		return nil, errors.New("notify: no recipients configured")
	}
	if cfg.FromEmail == "" {
		return nil, errors.New("notify: no sender address configured")
	}
	r, err := NewRenderer(siteName)
	if err != nil {
		return nil, err
	}
	return &Notifier{
		mailer:    m,
		renderer:  r,
		fromName:  cfg.FromName,
		fromEmail: cfg.FromEmail,
		to:        cfg.To,
	}, nil
}

// Notify renders and sends the staff email for n.
func (s *Notifier) Notify(ctx context.Context, n submission.Notification) error {
	subject, text, html, err := s.renderer.Render(n)
	if err != nil {
		return fmt.Errorf("rendering %s notification: %w", n.Kind, err)
	}
	return s.mailer.Send(ctx, Email{
		FromName:  s.fromName,
		FromEmail: s.fromEmail,
		To:        s.to,
		ReplyTo:   n.Email(),
		Subject:   subject,
		HTML:      html,
		Text:      text,
		Tags: map[string]string{
			"kind": string(n.Kind),
			"ref":  n.Reference,
		},
	})
}
