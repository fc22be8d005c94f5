package state

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Container owns the application state. It is not safe for concurrent use:
// a single writer (the UI loop or one CLI command) mutates it, and every
// mutation is written through to the Persister before returning.
type Container struct {
	snap    Snapshot
	persist Persister
	now     func() time.Time
	newID   func() string
	logger  *log.Logger
}

type Option func(*Container)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Container) { c.now = now }
}

// WithIDs replaces the uuid generator.
func WithIDs(newID func() string) Option {
	return func(c *Container) { c.newID = newID }
}

func WithLogger(l *log.Logger) Option {
	return func(c *Container) { c.logger = l }
}

// Open rehydrates a Container from p. A missing, unreadable or incompatible
// snapshot is replaced by Seed data. p may be nil for a purely in-memory
// container.
func Open(p Persister, opts ...Option) *Container {
	c := &Container{
		persist: p,
		now:     time.Now,
		newID:   uuid.NewString,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	if p == nil {
		c.snap = Seed(c.now())
		return c
	}
	snap, err := p.Load()
	switch {
	case err == nil:
		c.snap = snap.clone()
	case errors.Is(err, ErrNoSnapshot):
		c.logger.Debug("no stored state, using seed data")
		c.snap = Seed(c.now())
	default:
		c.logger.Warn("discarding stored state", "err", err)
		c.snap = Seed(c.now())
	}
	return c
}

// Snapshot returns a deep copy of the current state.
func (c *Container) Snapshot() Snapshot {
	return c.snap.clone()
}

// commit writes the current state through to the Persister. Failures are
// logged and otherwise ignored; the in-memory state stays authoritative.
func (c *Container) commit() {
	if c.persist == nil {
		return
	}
	snap := c.snap.clone()
	if err := c.persist.Save(&snap); err != nil {
		c.logger.Warn("persist state", "err", err)
	}
}

func (c *Container) uniqueTaskID() string {
	for {
		id := c.newID()
		if c.find(id) < 0 {
			return id
		}
	}
}
