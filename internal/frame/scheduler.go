package frame

import (
	"context"
	"time"

	"github.com/san-kum/glide/internal/logging"
)

// Scheduler coalesces frame requests into single platform registrations and
// broadcasts each fired frame to its subscribers.
type Scheduler struct {
	platform Platform
	clock    Clock
	log      logging.Logger

	pending  bool
	cancel   func()
	disposed bool

	inFrame   bool
	frameTime time.Time

	nextID uint64
	order  []uint64
	subs   map[uint64]subscriber

	registrations int
	frames        int
}

type subscriber struct {
	update func(now time.Time)
	notify func()
}

type Option func(*Scheduler)

// WithClock overrides the clock. By default a platform that is also a Clock
// is used, falling back to SystemClock.
func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

// New creates a scheduler bound to platform for its whole lifetime.
func New(platform Platform, opts ...Option) *Scheduler {
	s := &Scheduler{
		platform: platform,
		log:      logging.NewNoOpLogger(),
		subs:     make(map[uint64]subscriber),
	}
	if c, ok := platform.(Clock); ok {
		s.clock = c
	} else {
		s.clock = SystemClock{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the timestamp of the frame being broadcast, or the clock time
// outside a frame.
func (s *Scheduler) Now() time.Time {
	if s.inFrame {
		return s.frameTime
	}
	return s.clock.Now()
}

// RequestFrame asks for one broadcast on the next frame. Repeated calls before
// the frame fires register only once. It is a no-op after Dispose.
func (s *Scheduler) RequestFrame() {
	if s.disposed || s.pending {
		return
	}
	s.pending = true
	s.registrations++
	s.cancel = s.platform.RequestAnimationFrame(s.tick)
}

// Subscribe adds a participant to every frame broadcast. All update funcs run
// before any notify func. The returned func unsubscribes.
func (s *Scheduler) Subscribe(update func(now time.Time), notify func()) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subs[id] = subscriber{update: update, notify: notify}
	s.order = append(s.order, id)

	return func() {
		if _, ok := s.subs[id]; !ok {
			return
		}
		delete(s.subs, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *Scheduler) tick(now time.Time) {
	s.pending = false
	s.cancel = nil
	if s.disposed {
		return
	}
	s.frames++

	ids := append([]uint64(nil), s.order...)
	s.inFrame = true
	s.frameTime = now
	defer func() { s.inFrame = false }()

	for _, id := range ids {
		if sub, ok := s.subs[id]; ok && sub.update != nil {
			sub.update(now)
		}
	}
	for _, id := range ids {
		if sub, ok := s.subs[id]; ok && sub.notify != nil {
			sub.notify()
		}
	}
}

// Dispose cancels any pending registration and stops all broadcasts.
// It is safe to call more than once.
func (s *Scheduler) Dispose() {
	if s.disposed {
		return
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.pending = false
	s.disposed = true
	s.subs = make(map[uint64]subscriber)
	s.order = nil
	s.log.Debug("frame scheduler disposed", "frames", s.frames, "registrations", s.registrations)
}

func (s *Scheduler) Pending() bool      { return s.pending }
func (s *Scheduler) Disposed() bool     { return s.disposed }
func (s *Scheduler) Registrations() int { return s.registrations }
func (s *Scheduler) Frames() int        { return s.frames }
func (s *Scheduler) Subscribers() int   { return len(s.order) }

type contextKey struct{}

// WithScheduler binds s to ctx.
func WithScheduler(ctx context.Context, s *Scheduler) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the scheduler bound to ctx, if any.
func FromContext(ctx context.Context) (*Scheduler, bool) {
	s, ok := ctx.Value(contextKey{}).(*Scheduler)
	return s, ok && s != nil
}
