package form

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samarpantrust/outreach/internal/domain"
)

// recordingGateway records every dispatched record. When release is set,
// each call blocks until it receives a value.
type recordingGateway struct {
	mu         sync.Mutex
	volunteers []domain.VolunteerInterest
	contacts   []domain.ContactMessage
	pledges    []domain.DonationPledge
	err        error

	started chan struct{}
	release chan struct{}
}

func (g *recordingGateway) wait() error {
	if g.started != nil {
		g.started <- struct{}{}
	}
	if g.release != nil {
		<-g.release
	}
	return g.err
}

func (g *recordingGateway) SubmitVolunteerInterest(_ context.Context, v domain.VolunteerInterest) error {
	g.mu.Lock()
	g.volunteers = append(g.volunteers, v)
	g.mu.Unlock()
	return g.wait()
}

func (g *recordingGateway) SubmitContactMessage(_ context.Context, m domain.ContactMessage) error {
	g.mu.Lock()
	g.contacts = append(g.contacts, m)
	g.mu.Unlock()
	return g.wait()
}

func (g *recordingGateway) SubmitDonationPledge(_ context.Context, p domain.DonationPledge) error {
	g.mu.Lock()
	g.pledges = append(g.pledges, p)
	g.mu.Unlock()
	return g.wait()
}

func (g *recordingGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.volunteers) + len(g.contacts) + len(g.pledges)
}

func TestNewForm_IsIdle(t *testing.T) {
	f := NewContactForm(&recordingGateway{})
	assert.Equal(t, StatusIdle, f.Status())
	assert.Nil(t, f.Banner())
	assert.Equal(t, ContactFields{}, f.Fields())
}

func TestSubmit_ValidationFailureMakesNoCall(t *testing.T) {
	gw := &recordingGateway{}
	f := NewContactForm(gw)
	fields := ContactFields{Name: "Ravi", Email: "ravi@example.org"}
	f.SetFields(fields)

	err := f.Submit(context.Background())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgContactRequired, verr.Message)
	assert.Equal(t, 0, gw.calls())
	assert.Equal(t, StatusError, f.Status())
	assert.Equal(t, &Banner{Kind: BannerError, Message: MsgContactRequired}, f.Banner())
	assert.Equal(t, fields, f.Fields())
}

func TestSubmit_InvalidEmail(t *testing.T) {
	gw := &recordingGateway{}
	f := NewVolunteerForm(gw)
	f.SetFields(VolunteerFields{Name: "Asha", Email: "asha.example.org", AreaOfInterest: "water", Availability: "remote"})

	err := f.Submit(context.Background())
	assert.EqualError(t, err, MsgInvalidEmail)
	assert.Equal(t, 0, gw.calls())
}

func TestSubmit_DonationAmounts(t *testing.T) {
	for _, amount := range []string{"0", "-5", "abc", ""} {
		gw := &recordingGateway{}
		f := NewDonateForm(gw)
		f.SetFields(DonateFields{Name: "Meera", Email: "meera@example.org", Amount: amount})

		err := f.Submit(context.Background())
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, amount)
		assert.Equal(t, 0, gw.calls(), amount)
	}

	for _, amount := range []string{"50", "50.5"} {
		gw := &recordingGateway{}
		f := NewDonateForm(gw)
		f.SetFields(DonateFields{Name: "Meera", Email: "meera@example.org", Amount: amount})

		require.NoError(t, f.Submit(context.Background()))
		require.Len(t, gw.pledges, 1)
		assert.Equal(t, uint64(50), gw.pledges[0].Amount)
	}
}

func TestSubmit_SuccessResetsFields(t *testing.T) {
	gw := &recordingGateway{}
	f := NewVolunteerForm(gw)
	f.SetFields(VolunteerFields{
		Name: "Asha", Email: "asha@example.org", AreaOfInterest: "education",
		Availability: "part-time", Message: "Weekends",
	})

	require.NoError(t, f.Submit(context.Background()))

	assert.Equal(t, StatusSuccess, f.Status())
	assert.Equal(t, &Banner{Kind: BannerSuccess, Message: MsgVolunteerSuccess}, f.Banner())
	assert.Equal(t, VolunteerFields{}, f.Fields())
	require.Len(t, gw.volunteers, 1)
	assert.Equal(t, domain.VolunteerInterest{
		Name: "Asha", Email: "asha@example.org", Availability: "part-time",
		Message: "Weekends", AreaOfInterest: "education",
	}, gw.volunteers[0])
}

func TestSubmit_FailurePreservesFields(t *testing.T) {
	cause := errors.New("actor not available")
	gw := &recordingGateway{err: cause}
	f := NewVolunteerForm(gw)
	fields := VolunteerFields{Name: "Asha", Email: "asha@example.org", AreaOfInterest: "healthcare", Availability: "flexible"}
	f.SetFields(fields)

	err := f.Submit(context.Background())

	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, MsgVolunteerFailure, serr.Message)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, StatusError, f.Status())
	assert.Equal(t, &Banner{Kind: BannerError, Message: MsgVolunteerFailure}, f.Banner())
	assert.Equal(t, fields, f.Fields())
	assert.Equal(t, 1, gw.calls())
}

func TestSubmit_ClearsPreviousBanner(t *testing.T) {
	gw := &recordingGateway{}
	f := NewContactForm(gw)

	require.Error(t, f.Submit(context.Background()))
	require.NotNil(t, f.Banner())

	gw.started = make(chan struct{})
	gw.release = make(chan struct{})
	f.SetFields(ContactFields{Name: "Ravi", Email: "ravi@example.org", Message: "Hi"})

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()
	<-gw.started

	assert.Equal(t, StatusPending, f.Status())
	assert.Nil(t, f.Banner())

	close(gw.release)
	require.NoError(t, <-done)
}

func TestSubmit_RefusedWhilePending(t *testing.T) {
	gw := &recordingGateway{started: make(chan struct{}), release: make(chan struct{})}
	f := NewContactForm(gw)
	f.SetFields(ContactFields{Name: "Ravi", Email: "ravi@example.org", Message: "Hi"})

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()
	<-gw.started

	assert.ErrorIs(t, f.Submit(context.Background()), ErrSubmitPending)
	assert.Equal(t, 1, gw.calls())

	close(gw.release)
	require.NoError(t, <-done)
	assert.Equal(t, StatusSuccess, f.Status())
}

func TestClose_DiscardsInFlightResult(t *testing.T) {
	gw := &recordingGateway{started: make(chan struct{}), release: make(chan struct{})}
	f := NewDonateForm(gw)
	fields := DonateFields{Name: "Meera", Email: "meera@example.org", Amount: "25"}
	f.SetFields(fields)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()
	<-gw.started

	f.Close()
	close(gw.release)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("submit did not return")
	}
	assert.Equal(t, StatusPending, f.Status())
	assert.Nil(t, f.Banner())
	assert.Equal(t, fields, f.Fields())

	assert.ErrorIs(t, f.Submit(context.Background()), ErrClosed)
	assert.Equal(t, 1, gw.calls())
}

func TestValidate_DoesNotChangeState(t *testing.T) {
	f := NewDonateForm(&recordingGateway{})
	f.SetFields(DonateFields{Name: "Meera", Email: "meera@example.org", Amount: "abc"})

	assert.EqualError(t, f.Validate(), MsgInvalidAmount)
	assert.Equal(t, StatusIdle, f.Status())
	assert.Nil(t, f.Banner())
}

func TestScenario_ContactSuccess(t *testing.T) {
	gw := &recordingGateway{}
	f := NewContactForm(gw)
	f.SetFields(ContactFields{Name: "A", Email: "a@b.c", Subject: "", Message: "Hi"})

	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, gw.contacts, 1)
	assert.Equal(t, domain.ContactMessage{Subject: "", Name: "A", Email: "a@b.c", Message: "Hi"}, gw.contacts[0])
	assert.Equal(t, StatusSuccess, f.Status())
	assert.Equal(t, MsgContactSuccess, f.Banner().Message)
	assert.Equal(t, ContactFields{}, f.Fields())
}

func TestScenario_DonateFailure(t *testing.T) {
	gw := &recordingGateway{err: errors.New("actor not available")}
	f := NewDonateForm(gw)
	fields := DonateFields{Name: "A", Email: "a@b.c", Amount: "100", Message: ""}
	f.SetFields(fields)

	err := f.Submit(context.Background())

	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	require.Len(t, gw.pledges, 1)
	assert.Equal(t, domain.DonationPledge{Name: "A", Email: "a@b.c", Amount: 100}, gw.pledges[0])
	assert.Nil(t, gw.pledges[0].Message)
	assert.Equal(t, StatusError, f.Status())
	assert.Equal(t, MsgDonateFailure, f.Banner().Message)
	assert.Equal(t, fields, f.Fields())
}
