// Package reactive is a small push-based observer layer: signals hold a value
// and notify watchers when it changes. It is the host side that feeds target
// values into animated outputs and re-runs consumers when outputs change.
//
// Like the rest of the engine it is single threaded: Set, Watch and the
// callbacks all run on the caller's goroutine.
package reactive

// Notifier is anything that can announce a change.
type Notifier interface {
	Watch(fn func()) (stop func())
}

// Watchers is an ordered set of change callbacks.
type Watchers struct {
	nextID uint64
	fns    map[uint64]func()
	order  []uint64
}

// Watch registers fn and returns a function removing it again.
func (w *Watchers) Watch(fn func()) (stop func()) {
	if w.fns == nil {
		w.fns = make(map[uint64]func())
	}
	id := w.nextID
	w.nextID++
	w.fns[id] = fn
	w.order = append(w.order, id)

	return func() {
		if _, ok := w.fns[id]; !ok {
			return
		}
		delete(w.fns, id)
		for i, v := range w.order {
			if v == id {
				w.order = append(w.order[:i], w.order[i+1:]...)
				break
			}
		}
	}
}

// Notify calls every watcher once. Watchers added during Notify are not
// called until the next round.
func (w *Watchers) Notify() {
	ids := append([]uint64(nil), w.order...)
	for _, id := range ids {
		if fn, ok := w.fns[id]; ok {
			fn()
		}
	}
}

// Len reports the number of registered watchers.
func (w *Watchers) Len() int { return len(w.order) }

// Signal is a mutable value with change notification.
type Signal[T any] struct {
	value    T
	equal    func(a, b T) bool
	watchers Watchers
}

// NewSignal creates a signal holding initial. Every Set notifies.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// NewComparableSignal creates a signal that skips notification when the new
// value equals the old one.
func NewComparableSignal[T comparable](initial T) *Signal[T] {
	return &Signal[T]{value: initial, equal: func(a, b T) bool { return a == b }}
}

func (s *Signal[T]) Get() T { return s.value }

func (s *Signal[T]) Set(v T) {
	if s.equal != nil && s.equal(s.value, v) {
		return
	}
	s.value = v
	s.watchers.Notify()
}

// Update applies fn to the current value and stores the result.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

func (s *Signal[T]) Watch(fn func()) (stop func()) {
	return s.watchers.Watch(fn)
}

// Effect runs fn now and again whenever any of deps changes. The returned
// function stops it.
func Effect(fn func(), deps ...Notifier) (stop func()) {
	fn()
	stops := make([]func(), 0, len(deps))
	for _, d := range deps {
		stops = append(stops, d.Watch(fn))
	}
	return func() {
		for _, s := range stops {
			s()
		}
	}
}
