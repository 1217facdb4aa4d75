package actor_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samarpantrust/outreach/internal/actor"
	"github.com/samarpantrust/outreach/internal/actor/actortest"
)

type flakyProber struct {
	failures int32
	calls    atomic.Int32
}

func (p *flakyProber) Ping(context.Context) error {
	if p.calls.Add(1) <= p.failures {
		return errors.New("connection refused")
	}
	return nil
}

func TestConn_NotEstablished(t *testing.T) {
	c := actor.NewConn()
	a, ok := c.Actor()
	assert.False(t, ok)
	assert.Nil(t, a)

	_, err := c.Get()
	assert.ErrorIs(t, err, actor.ErrNotConnected)

	var nilConn *actor.Conn
	_, ok = nilConn.Actor()
	assert.False(t, ok)
}

func TestConn_SetAndClear(t *testing.T) {
	mem := actortest.New()
	c := actor.Connected(mem)

	a, ok := c.Actor()
	require.True(t, ok)
	assert.Same(t, mem, a)

	c.Set(nil)
	_, ok = c.Actor()
	assert.False(t, ok)
}

func TestConn_EstablishRetriesUntilPingSucceeds(t *testing.T) {
	c := actor.NewConn()
	p := &flakyProber{failures: 2}
	var reported int

	err := c.Establish(context.Background(), actortest.New(), p, time.Millisecond, func(error) { reported++ })
	require.NoError(t, err)

	_, ok := c.Actor()
	assert.True(t, ok)
	assert.Equal(t, int32(3), p.calls.Load())
	assert.Equal(t, 2, reported)
}

func TestConn_EstablishStopsWithContext(t *testing.T) {
	c := actor.NewConn()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Establish(ctx, actortest.New(), &flakyProber{failures: 1 << 30}, 5*time.Millisecond, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, ok := c.Actor()
	assert.False(t, ok)
}
