package submission

import (
	"context"
	"time"

	"github.com/samarpantrust/outreach/internal/domain"
)

// Notifier is told about every submission the actor accepted.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Notification describes one accepted submission. Exactly one of Volunteer,
// Contact or Pledge is set, matching Kind.
type Notification struct {
	Reference   string
	Kind        domain.Kind
	SubmittedAt time.Time

	Volunteer *domain.VolunteerInterest
	Contact   *domain.ContactMessage
	Pledge    *domain.DonationPledge
}

// Email returns the submitter's address.
func (n Notification) Email() string {
	switch {
	case n.Volunteer != nil:
		return n.Volunteer.Email
	case n.Contact != nil:
		return n.Contact.Email
	case n.Pledge != nil:
		return n.Pledge.Email
	}
	return ""
}
