package form

import (
	"context"
	"sync"

	"github.com/samarpantrust/outreach/internal/domain"
)

// Gateway forwards validated submissions to the backend.
type Gateway interface {
	SubmitVolunteerInterest(ctx context.Context, interest domain.VolunteerInterest) error
	SubmitContactMessage(ctx context.Context, message domain.ContactMessage) error
	SubmitDonationPledge(ctx context.Context, pledge domain.DonationPledge) error
}

// Status is the lifecycle state of a form.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// BannerKind selects the styling of a Banner.
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// Banner is the status message shown above a form.
type Banner struct {
	Kind    BannerKind `json:"status"`
	Message string     `json:"message"`
}

// sendFunc validates a snapshot and returns the call that dispatches it.
type sendFunc[F any] func(F) (func(context.Context, Gateway) error, error)

// Controller is the state of one form instance. Safe for concurrent use;
// at most one submission is in flight at a time.
type Controller[F any] struct {
	gateway Gateway
	prepare sendFunc[F]
	success string
	failure string

	mu     sync.Mutex
	fields F
	status Status
	banner *Banner
	closed bool
}

func newController[F any](gw Gateway, prepare func(F) (func(context.Context, Gateway) error, error), success, failure string) *Controller[F] {
	return &Controller[F]{
		gateway: gw,
		prepare: prepare,
		success: success,
		failure: failure,
		status:  StatusIdle,
	}
}

// ContactForm, DonateForm and VolunteerForm are the controllers of the
// three submission pages.
type (
	ContactForm   = Controller[ContactFields]
	DonateForm    = Controller[DonateFields]
	VolunteerForm = Controller[VolunteerFields]
)

// NewContactForm returns an idle contact form.
func NewContactForm(gw Gateway) *ContactForm {
	return newController(gw, func(f ContactFields) (func(context.Context, Gateway) error, error) {
		rec, err := contactRecord(f)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, gw Gateway) error { return gw.SubmitContactMessage(ctx, rec) }, nil
	}, MsgContactSuccess, MsgContactFailure)
}

// NewDonateForm returns an idle donate form.
func NewDonateForm(gw Gateway) *DonateForm {
	return newController(gw, func(f DonateFields) (func(context.Context, Gateway) error, error) {
		rec, err := donationRecord(f)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, gw Gateway) error { return gw.SubmitDonationPledge(ctx, rec) }, nil
	}, MsgDonateSuccess, MsgDonateFailure)
}

// NewVolunteerForm returns an idle get-involved form.
func NewVolunteerForm(gw Gateway) *VolunteerForm {
	return newController(gw, func(f VolunteerFields) (func(context.Context, Gateway) error, error) {
		rec, err := volunteerRecord(f)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, gw Gateway) error { return gw.SubmitVolunteerInterest(ctx, rec) }, nil
	}, MsgVolunteerSuccess, MsgVolunteerFailure)
}

// Fields returns a snapshot of the current field values.
func (c *Controller[F]) Fields() F {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// SetFields replaces the field values. It has no effect after Close.
func (c *Controller[F]) SetFields(f F) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.fields = f
}

// Status returns the current lifecycle state.
func (c *Controller[F]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Banner returns the current banner, or nil when none is shown.
func (c *Controller[F]) Banner() *Banner {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.banner == nil {
		return nil
	}
	b := *c.banner
	return &b
}

// Validate checks the current fields without changing any state.
func (c *Controller[F]) Validate() error {
	_, err := c.prepare(c.Fields())
	return err
}

// Submit validates the current fields and, when they pass, sends them
// through the gateway once. It returns nil on success, a *ValidationError
// or a *SubmissionError on failure, ErrSubmitPending while another submit
// is in flight and ErrClosed after Close.
func (c *Controller[F]) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.status == StatusPending {
		c.mu.Unlock()
		return ErrSubmitPending
	}
	c.banner = nil

	send, err := c.prepare(c.fields)
	if err != nil {
		c.status = StatusError
		c.banner = &Banner{Kind: BannerError, Message: err.Error()}
		c.mu.Unlock()
		return err
	}
	c.status = StatusPending
	c.mu.Unlock()

	sendErr := send(ctx, c.gateway)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if sendErr != nil {
		c.status = StatusError
		c.banner = &Banner{Kind: BannerError, Message: c.failure}
		return &SubmissionError{Message: c.failure, Err: sendErr}
	}
	c.status = StatusSuccess
	c.banner = &Banner{Kind: BannerSuccess, Message: c.success}
	var empty F
	c.fields = empty
	return nil
}

// Close tears the form down. A submission still in flight completes
// against the gateway but its outcome no longer touches the form.
func (c *Controller[F]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
