package submission

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samarpantrust/outreach/internal/actor"
	"github.com/samarpantrust/outreach/internal/actor/actortest"
	"github.com/samarpantrust/outreach/internal/cache"
	"github.com/samarpantrust/outreach/internal/domain"
	"github.com/samarpantrust/outreach/internal/pkg/logger"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu   sync.Mutex
	got  []Notification
	fail error
}

func (r *recordingNotifier) Notify(_ context.Context, n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
	return r.fail
}

func newTestCache(t *testing.T) *cache.ListCache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return cache.New(rdb, "test", time.Minute, logger.Nop())
}

func TestSubmit_NotAvailable(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewService(actor.NewConn(), nil, notifier, logger.Nop())
	ctx := context.Background()

	errs := []error{
		svc.SubmitVolunteerInterest(ctx, domain.VolunteerInterest{Name: "A", Email: "a@b"}),
		svc.SubmitContactMessage(ctx, domain.ContactMessage{Name: "A", Email: "a@b", Message: "m"}),
		svc.SubmitDonationPledge(ctx, domain.DonationPledge{Name: "A", Email: "a@b", Amount: 1}),
	}
	for _, err := range errs {
		assert.ErrorIs(t, err, ErrNotAvailable)
		assert.Contains(t, err.Error(), "actor not available")
	}
	assert.Empty(t, notifier.got)
	assert.False(t, svc.Available())

	_, err := svc.ListContactMessages(ctx)
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestSubmit_ForwardsOnceAndNotifies(t *testing.T) {
	mem := actortest.New()
	notifier := &recordingNotifier{}
	svc := NewService(actor.Connected(mem), nil, notifier, logger.Nop())
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	pledge := domain.DonationPledge{Name: "Meera", Email: "meera@example.org", Amount: 50}
	require.NoError(t, svc.SubmitDonationPledge(context.Background(), pledge))
	svc.Wait()

	assert.Equal(t, 1, mem.Calls(actor.MethodSubmitDonationPledge))
	require.Len(t, notifier.got, 1)
	n := notifier.got[0]
	assert.Equal(t, domain.KindDonationPledge, n.Kind)
	assert.NotEmpty(t, n.Reference)
	assert.Equal(t, fixed, n.SubmittedAt)
	require.NotNil(t, n.Pledge)
	assert.Equal(t, pledge, *n.Pledge)
	assert.Equal(t, "meera@example.org", n.Email())
}

func TestSubmit_FailureIsWrappedAndSkipsFollowUps(t *testing.T) {
	mem := actortest.New()
	boom := errors.New("rejected")
	mem.FailMethod(actor.MethodSubmitContactMessage, boom)

	lc := cache.New(nil, "", 0, logger.Nop())
	invalidated := 0
	lc.Subscribe(cache.BucketContactMessages, func(cache.Bucket) { invalidated++ })

	notifier := &recordingNotifier{}
	svc := NewService(actor.Connected(mem), lc, notifier, logger.Nop())

	err := svc.SubmitContactMessage(context.Background(), domain.ContactMessage{Name: "A", Email: "a@b", Message: "m"})
	svc.Wait()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, mem.Calls(actor.MethodSubmitContactMessage))
	assert.Zero(t, invalidated)
	assert.Empty(t, notifier.got)
}

func TestSubmit_NotifierFailureDoesNotFail(t *testing.T) {
	mem := actortest.New()
	notifier := &recordingNotifier{fail: errors.New("ses throttled for ops@example.org")}
	svc := NewService(actor.Connected(mem), nil, notifier, logger.Nop())

	err := svc.SubmitVolunteerInterest(context.Background(), domain.VolunteerInterest{
		Name: "Asha", Email: "asha@example.org", Availability: "remote", AreaOfInterest: "water",
	})
	assert.NoError(t, err)
	svc.Wait()
	assert.Len(t, notifier.got, 1)
}

// blockingNotifier holds Notify until released and records the context
// state it saw.
type blockingNotifier struct {
	started chan struct{}
	release chan struct{}
	ctxErr  error
}

func (b *blockingNotifier) Notify(ctx context.Context, _ Notification) error {
	close(b.started)
	<-b.release
	b.ctxErr = ctx.Err()
	return nil
}

func TestSubmit_NotificationDoesNotHoldTheCaller(t *testing.T) {
	mem := actortest.New()
	notifier := &blockingNotifier{started: make(chan struct{}), release: make(chan struct{})}
	svc := NewService(actor.Connected(mem), nil, notifier, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	err := svc.SubmitContactMessage(ctx, domain.ContactMessage{Name: "A", Email: "a@example.org", Message: "m"})
	require.NoError(t, err)
	cancel()

	<-notifier.started
	close(notifier.release)
	svc.Wait()
	assert.NoError(t, notifier.ctxErr)
}

func TestSubmit_InvalidatesOnlyItsBucket(t *testing.T) {
	mem := actortest.New()
	lc := newTestCache(t)
	svc := NewService(actor.Connected(mem), lc, nil, logger.Nop())
	ctx := context.Background()

	notified := map[cache.Bucket]int{}
	for _, b := range []cache.Bucket{cache.BucketVolunteerInterests, cache.BucketContactMessages, cache.BucketDonationPledges} {
		lc.Subscribe(b, func(b cache.Bucket) { notified[b]++ })
	}

	require.NoError(t, svc.SubmitContactMessage(ctx, domain.ContactMessage{Name: "A", Email: "a@example.org", Message: "hello"}))

	assert.Equal(t, map[cache.Bucket]int{cache.BucketContactMessages: 1}, notified)
}

func TestList_ReadsThroughCacheUntilInvalidated(t *testing.T) {
	mem := actortest.New()
	svc := NewService(actor.Connected(mem), newTestCache(t), nil, logger.Nop())
	ctx := context.Background()

	require.NoError(t, svc.SubmitContactMessage(ctx, domain.ContactMessage{Name: "A", Email: "a@example.org", Message: "one"}))

	first, err := svc.ListContactMessages(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	again, err := svc.ListContactMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, mem.Calls(actor.MethodListContactMessages))

	require.NoError(t, svc.SubmitContactMessage(ctx, domain.ContactMessage{Name: "B", Email: "b@example.org", Message: "two"}))

	after, err := svc.ListContactMessages(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2)
	assert.Equal(t, "two", after[1].Message)
	assert.Equal(t, 2, mem.Calls(actor.MethodListContactMessages))
}

func TestLookup_NotFoundThenFound(t *testing.T) {
	mem := actortest.New()
	svc := NewService(actor.Connected(mem), newTestCache(t), nil, logger.Nop())
	ctx := context.Background()

	_, err := svc.GetDonationPledgeByEmail(ctx, "meera@example.org")
	assert.ErrorIs(t, err, ErrNotFound)

	note := "for the school"
	require.NoError(t, svc.SubmitDonationPledge(ctx, domain.DonationPledge{
		Name: "Meera", Email: "meera@example.org", Amount: 250, Message: &note,
	}))

	got, err := svc.GetDonationPledgeByEmail(ctx, "Meera@example.org")
	require.NoError(t, err)
	assert.Equal(t, uint64(250), got.Amount)
	assert.Equal(t, "for the school", got.MessageText())
}

// exactMatchActor holds one contact message and matches lookups on the
// address byte for byte.
type exactMatchActor struct {
	*actortest.Memory
	held domain.ContactMessage
}

func (a *exactMatchActor) GetContactMessageByEmail(_ context.Context, email string) (*domain.ContactMessage, error) {
	if email != a.held.Email {
		return nil, nil
	}
	m := a.held
	return &m, nil
}

func TestLookup_CacheKeepsAddressesAsSent(t *testing.T) {
	a := &exactMatchActor{
		Memory: actortest.New(),
		held:   domain.ContactMessage{Name: "Jane", Email: "Jane@x.com", Message: "hello"},
	}
	svc := NewService(actor.Connected(a), newTestCache(t), nil, logger.Nop())
	ctx := context.Background()

	_, err := svc.GetContactMessageByEmail(ctx, "jane@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.GetContactMessageByEmail(ctx, "Jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Message)

	_, err = svc.GetContactMessageByEmail(ctx, " Jane@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookups_AllKinds(t *testing.T) {
	mem := actortest.New()
	svc := NewService(actor.Connected(mem), nil, nil, logger.Nop())
	ctx := context.Background()

	require.NoError(t, svc.SubmitVolunteerInterest(ctx, domain.VolunteerInterest{Name: "V", Email: "v@example.org", Availability: "flexible", AreaOfInterest: "education"}))
	require.NoError(t, svc.SubmitContactMessage(ctx, domain.ContactMessage{Name: "C", Email: "c@example.org", Message: "hi"}))

	vi, err := svc.GetVolunteerInterestByEmail(ctx, "v@example.org")
	require.NoError(t, err)
	assert.Equal(t, "education", vi.AreaOfInterest)

	cm, err := svc.GetContactMessageByEmail(ctx, "c@example.org")
	require.NoError(t, err)
	assert.Equal(t, "hi", cm.Message)

	_, err = svc.GetContactMessageByEmail(ctx, "v@example.org")
	assert.ErrorIs(t, err, ErrNotFound)

	interests, err := svc.ListVolunteerInterests(ctx)
	require.NoError(t, err)
	assert.Len(t, interests, 1)

	pledges, err := svc.ListDonationPledges(ctx)
	require.NoError(t, err)
	assert.Empty(t, pledges)
}

func TestList_ActorErrorIsWrapped(t *testing.T) {
	mem := actortest.New()
	boom := errors.New("query failed")
	mem.FailWith(boom)
	svc := NewService(actor.Connected(mem), nil, nil, logger.Nop())

	_, err := svc.ListVolunteerInterests(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "listing volunteer interests")
}
