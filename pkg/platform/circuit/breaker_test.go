package circuit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func newClock() *clock {
	return &clock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

// tripped records n failures and reports whether the breaker ended up open.
func tripped(b *Breaker, n int) bool {
	open := false
	for range n {
		open, _ = b.RecordFailure()
	}
	return open
}

func TestBreakerStartsClosed(t *testing.T) {
	b := New("provider")
	assert.Equal(t, "provider", b.Name())
	assert.Equal(t, StateClosed, b.State())
	assert.True(t, b.Allow())
}

func TestBreakerOpensOnConsecutiveFailures(t *testing.T) {
	b := New("provider", WithFailureThreshold(3))

	assert.False(t, tripped(b, 2))
	open, change := b.RecordFailure()
	assert.True(t, open)
	assert.True(t, change.Opened)
	assert.Equal(t, "open", b.State().String())

	_, change = b.RecordFailure()
	assert.False(t, change.Opened, "already open")
}

func TestBreakerSuccessClearsFailureRun(t *testing.T) {
	b := New("provider", WithFailureThreshold(3))

	tripped(b, 2)
	b.RecordSuccess()
	assert.False(t, tripped(b, 2))
	assert.True(t, tripped(b, 1))
}

func TestBreakerProbesAfterCooldown(t *testing.T) {
	c := newClock()
	b := New("provider", WithFailureThreshold(1), WithSuccessThreshold(2), WithCooldown(time.Minute), WithClock(c.now))
	require.True(t, tripped(b, 1))

	assert.False(t, b.Allow())
	c.advance(time.Minute)
	assert.True(t, b.Allow(), "first probe after cooldown")
	assert.False(t, b.Allow(), "one probe per cooldown")

	closed, change := b.RecordSuccess()
	assert.False(t, closed)
	assert.False(t, change.Closed)

	c.advance(time.Minute)
	require.True(t, b.Allow())
	closed, change = b.RecordSuccess()
	assert.True(t, closed)
	assert.True(t, change.Closed)
	assert.True(t, b.Allow())
}

func TestBreakerFailedProbeRearmsCooldown(t *testing.T) {
	c := newClock()
	b := New("provider", WithFailureThreshold(1), WithSuccessThreshold(3), WithCooldown(time.Minute), WithClock(c.now))
	tripped(b, 1)

	c.advance(time.Minute)
	require.True(t, b.Allow())
	b.RecordSuccess()
	b.RecordSuccess()
	b.RecordFailure()
	assert.True(t, b.IsOpen())

	c.advance(30 * time.Second)
	assert.False(t, b.Allow())

	for range 2 {
		b.RecordSuccess()
	}
	assert.True(t, b.IsOpen(), "success run restarts after a failure")
	b.RecordSuccess()
	assert.False(t, b.IsOpen())
}

func TestBreakerReset(t *testing.T) {
	b := New("provider", WithFailureThreshold(1))
	tripped(b, 1)

	b.Reset()
	assert.Equal(t, StateClosed, b.State())
	assert.True(t, b.Allow())
}
