package actor

import (
	"context"
	"sync/atomic"
	"time"
)

// Prober reports whether the remote actor is reachable.
type Prober interface {
	Ping(ctx context.Context) error
}

type actorRef struct{ a Actor }

// Conn holds the actor once a connection has been established. Until then
// Actor reports false and callers must fail fast instead of queuing.
// Safe for concurrent use.
type Conn struct {
	cur atomic.Pointer[actorRef]
}

// NewConn returns a Conn with no established actor.
func NewConn() *Conn {
	return &Conn{}
}

// Connected returns a Conn already holding a.
func Connected(a Actor) *Conn {
	c := NewConn()
	c.Set(a)
	return c
}

// Set installs a as the established actor. A nil a drops the connection.
func (c *Conn) Set(a Actor) {
	if a == nil {
		c.cur.Store(nil)
		return
	}
	c.cur.Store(&actorRef{a: a})
}

// Actor returns the established actor, if any.
func (c *Conn) Actor() (Actor, bool) {
	if c == nil {
		return nil, false
	}
	ref := c.cur.Load()
	if ref == nil {
		return nil, false
	}
	return ref.a, true
}

// Get is Actor for callers that want an error: it fails with
// ErrNotConnected until a connection has been established.
func (c *Conn) Get() (Actor, error) {
	a, ok := c.Actor()
	if !ok {
		return nil, ErrNotConnected
	}
	return a, nil
}

// Establish probes p every interval until the first successful ping, then
// installs a. It returns ctx.Err() if ctx ends first.
func (c *Conn) Establish(ctx context.Context, a Actor, p Prober, interval time.Duration, onFailure func(error)) error {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		err := p.Ping(ctx)
		if err == nil {
			c.Set(a)
			return nil
		}
		if onFailure != nil {
			onFailure(err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
