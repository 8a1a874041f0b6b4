package frame

import "time"

// Platform registers a callback to run before the next repaint.
// The returned cancel func must be safe to call after the callback fired.
type Platform interface {
	RequestAnimationFrame(cb func(now time.Time)) (cancel func())
}

// Clock reports the current instant used for animation progress.
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// callbackQueue holds pending frame callbacks in registration order.
type callbackQueue struct {
	nextID uint64
	ids    []uint64
	fns    map[uint64]func(time.Time)
}

func (q *callbackQueue) add(cb func(time.Time)) (cancel func()) {
	if q.fns == nil {
		q.fns = make(map[uint64]func(time.Time))
	}
	id := q.nextID
	q.nextID++
	q.fns[id] = cb
	q.ids = append(q.ids, id)
	return func() { delete(q.fns, id) }
}

// drain removes and returns every live callback.
func (q *callbackQueue) drain() []func(time.Time) {
	out := make([]func(time.Time), 0, len(q.fns))
	for _, id := range q.ids {
		if fn, ok := q.fns[id]; ok {
			out = append(out, fn)
			delete(q.fns, id)
		}
	}
	q.ids = q.ids[:0]
	return out
}

func (q *callbackQueue) len() int { return len(q.fns) }

// Manual is a Platform and Clock whose time only moves when told to.
type Manual struct {
	now           time.Time
	queue         callbackQueue
	registrations int
}

// Epoch is the default start instant of a Manual platform.
var Epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// NewManual creates a Manual platform starting at start, or at Epoch when
// start is zero.
func NewManual(start time.Time) *Manual {
	if start.IsZero() {
		start = Epoch
	}
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) RequestAnimationFrame(cb func(time.Time)) func() {
	m.registrations++
	return m.queue.add(cb)
}

// Advance moves the clock without firing callbacks.
func (m *Manual) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Fire runs the callbacks pending right now and returns how many ran.
// Callbacks registered while firing wait for the next Fire.
func (m *Manual) Fire() int {
	fns := m.queue.drain()
	for _, fn := range fns {
		fn(m.now)
	}
	return len(fns)
}

// Step advances the clock by d and fires.
func (m *Manual) Step(d time.Duration) int {
	m.Advance(d)
	return m.Fire()
}

// Pending reports registered callbacks that have not fired or been cancelled.
func (m *Manual) Pending() int { return m.queue.len() }

// Registrations counts every RequestAnimationFrame call.
func (m *Manual) Registrations() int { return m.registrations }

// Deferred is a Platform for hosts with their own frame source, such as a
// UI event loop. Callbacks wait until the host calls Flush.
type Deferred struct {
	queue callbackQueue
}

func NewDeferred() *Deferred { return &Deferred{} }

func (d *Deferred) RequestAnimationFrame(cb func(time.Time)) func() {
	return d.queue.add(cb)
}

// Flush runs the callbacks pending right now with the given frame time.
func (d *Deferred) Flush(now time.Time) int {
	fns := d.queue.drain()
	for _, fn := range fns {
		fn(now)
	}
	return len(fns)
}

func (d *Deferred) Pending() int { return d.queue.len() }
