package submission

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/samarpantrust/outreach/internal/actor"
	"github.com/samarpantrust/outreach/internal/cache"
	"github.com/samarpantrust/outreach/internal/domain"
	"github.com/samarpantrust/outreach/internal/pkg/logger"
)

// Service implements the submission gateway. It is safe for concurrent use.
type Service struct {
	conn     *actor.Conn
	cache    *cache.ListCache
	notifier Notifier
	log      logger.Logger
	now      func() time.Time

	pending sync.WaitGroup
}

// notifyTimeout bounds one staff notification. It runs detached from the
// submitting request.
const notifyTimeout = 15 * time.Second

// NewService creates a gateway over conn. lc and notifier may be nil.
func NewService(conn *actor.Conn, lc *cache.ListCache, notifier Notifier, log logger.Logger) *Service {
	return &Service{
		conn:     conn,
		cache:    lc,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

func (s *Service) actor() (actor.Actor, error) {
	a, err := s.conn.Get()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAvailable, err)
	}
	return a, nil
}

// SubmitVolunteerInterest forwards a get-involved submission.
func (s *Service) SubmitVolunteerInterest(ctx context.Context, interest domain.VolunteerInterest) error {
	a, err := s.actor()
	if err != nil {
		return err
	}
	if err := a.SubmitVolunteerInterest(ctx, interest); err != nil {
		return fmt.Errorf("submitting volunteer interest: %w", err)
	}
	s.accepted(ctx, cache.BucketVolunteerInterests, Notification{Kind: domain.KindVolunteerInterest, Volunteer: &interest})
	return nil
}

// SubmitContactMessage forwards a contact form submission.
func (s *Service) SubmitContactMessage(ctx context.Context, message domain.ContactMessage) error {
	a, err := s.actor()
	if err != nil {
		return err
	}
	if err := a.SubmitContactMessage(ctx, message); err != nil {
		return fmt.Errorf("submitting contact message: %w", err)
	}
	s.accepted(ctx, cache.BucketContactMessages, Notification{Kind: domain.KindContactMessage, Contact: &message})
	return nil
}

// SubmitDonationPledge forwards a donation pledge.
func (s *Service) SubmitDonationPledge(ctx context.Context, pledge domain.DonationPledge) error {
	a, err := s.actor()
	if err != nil {
		return err
	}
	if err := a.SubmitDonationPledge(ctx, pledge); err != nil {
		return fmt.Errorf("submitting donation pledge: %w", err)
	}
	s.accepted(ctx, cache.BucketDonationPledges, Notification{Kind: domain.KindDonationPledge, Pledge: &pledge})
	return nil
}

// accepted runs the follow-ups of a successful submit. Their failures are
// logged only. The notification is sent in the background so a slow mailer
// never holds the submit.
func (s *Service) accepted(ctx context.Context, b cache.Bucket, n Notification) {
	n.Reference = uuid.NewString()
	n.SubmittedAt = s.now().UTC()

	s.log.Info().
		Str("ref", n.Reference).
		Str("kind", string(n.Kind)).
		Str("email", logger.RedactEmail(n.Email())).
		Msg("submission accepted")

	if err := s.cache.Invalidate(ctx, b); err != nil {
		s.log.Warn().Err(err).Str("ref", n.Reference).Str("bucket", string(b)).Msg("cache invalidation failed")
	}
	if s.notifier == nil {
		return
	}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()
		if err := s.notifier.Notify(nctx, n); err != nil {
			s.log.Warn().Str("ref", n.Reference).Str("err", logger.RedactText(err.Error())).Msg("staff notification failed")
		}
	}()
}

// Wait blocks until every background notification has finished.
func (s *Service) Wait() {
	s.pending.Wait()
}

// ListVolunteerInterests returns every volunteer interest in submission order.
func (s *Service) ListVolunteerInterests(ctx context.Context) ([]domain.VolunteerInterest, error) {
	a, err := s.actor()
	if err != nil {
		return nil, err
	}
	out, err := cache.Fetch(ctx, s.cache, cache.BucketVolunteerInterests, cache.KeyAll, a.ListVolunteerInterests)
	if err != nil {
		return nil, fmt.Errorf("listing volunteer interests: %w", err)
	}
	return out, nil
}

// ListContactMessages returns every contact message in submission order.
func (s *Service) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	a, err := s.actor()
	if err != nil {
		return nil, err
	}
	out, err := cache.Fetch(ctx, s.cache, cache.BucketContactMessages, cache.KeyAll, a.ListContactMessages)
	if err != nil {
		return nil, fmt.Errorf("listing contact messages: %w", err)
	}
	return out, nil
}

// ListDonationPledges returns every donation pledge in submission order.
func (s *Service) ListDonationPledges(ctx context.Context) ([]domain.DonationPledge, error) {
	a, err := s.actor()
	if err != nil {
		return nil, err
	}
	out, err := cache.Fetch(ctx, s.cache, cache.BucketDonationPledges, cache.KeyAll, a.ListDonationPledges)
	if err != nil {
		return nil, fmt.Errorf("listing donation pledges: %w", err)
	}
	return out, nil
}

// GetVolunteerInterestByEmail returns the volunteer interest the actor holds
// for email, or ErrNotFound.
func (s *Service) GetVolunteerInterestByEmail(ctx context.Context, email string) (*domain.VolunteerInterest, error) {
	a, err := s.actor()
	if err != nil {
		return nil, err
	}
	v, err := cache.Fetch(ctx, s.cache, cache.BucketVolunteerInterests, cache.EmailKey(email),
		func(ctx context.Context) (*domain.VolunteerInterest, error) {
			return a.GetVolunteerInterestByEmail(ctx, email)
		})
	if err != nil {
		return nil, fmt.Errorf("looking up volunteer interest: %w", err)
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

// GetContactMessageByEmail returns the contact message the actor holds for
// email, or ErrNotFound.
func (s *Service) GetContactMessageByEmail(ctx context.Context, email string) (*domain.ContactMessage, error) {
	a, err := s.actor()
	if err != nil {
		return nil, err
	}
	v, err := cache.Fetch(ctx, s.cache, cache.BucketContactMessages, cache.EmailKey(email),
		func(ctx context.Context) (*domain.ContactMessage, error) {
			return a.GetContactMessageByEmail(ctx, email)
		})
	if err != nil {
		return nil, fmt.Errorf("looking up contact message: %w", err)
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

// GetDonationPledgeByEmail returns the donation pledge the actor holds for
// email, or ErrNotFound.
func (s *Service) GetDonationPledgeByEmail(ctx context.Context, email string) (*domain.DonationPledge, error) {
	a, err := s.actor()
	if err != nil {
		return nil, err
	}
	v, err := cache.Fetch(ctx, s.cache, cache.BucketDonationPledges, cache.EmailKey(email),
		func(ctx context.Context) (*domain.DonationPledge, error) {
			return a.GetDonationPledgeByEmail(ctx, email)
		})
	if err != nil {
		return nil, fmt.Errorf("looking up donation pledge: %w", err)
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

// Available reports whether an actor connection has been established.
func (s *Service) Available() bool {
	_, ok := s.conn.Actor()
	return ok
}
