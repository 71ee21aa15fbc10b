package pending

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Cloner is implemented by payloads that can be deep-copied.
type Cloner[T any] interface {
	Clone() T
}

// Writer is the producer half of a Channel.
type Writer[T Cloner[T]] interface {
	// Set stores payload, replacing any outstanding one, and returns the
	// request ID assigned to it.
	Set(payload T) string
	// Clear drops the outstanding payload, if any.
	Clear()
}

// Reader is the consumer half of a Channel.
type Reader[T Cloner[T]] interface {
	Has() bool
	Get() T
	Clear()
	Take() (T, bool)
}

// Meta describes the outstanding payload.
type Meta struct {
	// RequestID identifies the resolve call that wrote the payload.
	RequestID string
	// WrittenAt is when the payload was stored.
	WrittenAt time.Time
}

// Channel is a mutex-guarded single slot.
type Channel[T Cloner[T]] struct {
	mu      sync.Mutex
	present bool
	payload T
	meta    Meta
	now     func() time.Time
}

// NewChannel returns an empty channel.
func NewChannel[T Cloner[T]]() *Channel[T] {
	return &Channel[T]{now: time.Now}
}

// Set implements Writer.
func (c *Channel[T]) Set(payload T) string {
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.payload = payload.Clone()
	c.present = true
	c.meta = Meta{RequestID: id, WrittenAt: c.now()}

	return id
}

// Has reports whether a payload is outstanding.
func (c *Channel[T]) Has() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.present
}

// Get returns a copy of the outstanding payload, or the zero value when the
// slot is empty. Repeated calls without Clear return equal values.
func (c *Channel[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.present {
		var zero T
		return zero
	}

	return c.payload.Clone()
}

// Meta returns the metadata of the outstanding payload.
func (c *Channel[T]) Meta() (Meta, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.meta, c.present
}

// Clear empties the slot. Clearing an empty slot is a no-op.
func (c *Channel[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clearLocked()
}

// Take returns the outstanding payload and empties the slot in one step.
func (c *Channel[T]) Take() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.present {
		var zero T
		return zero, false
	}

	payload := c.payload
	c.clearLocked()

	return payload, true
}

func (c *Channel[T]) clearLocked() {
	var zero T

	c.present = false
	c.payload = zero
	c.meta = Meta{}
}
