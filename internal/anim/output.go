package anim

import (
	"container/list"
	"context"
	"time"

	"github.com/san-kum/glide/internal/frame"
	"github.com/san-kum/glide/internal/reactive"
	"github.com/san-kum/glide/internal/tween"
)

// Output is an animated value bound to a frame scheduler. T is the target
// type and I the interpolated type produced by the tween.
type Output[T, I any] struct {
	sched  *frame.Scheduler
	source func() Target[T]
	tween  tween.Func[T, I]
	diff   tween.Diff[I]

	st    status[T, I]
	value I

	version  uint64
	notified uint64
	watchers reactive.Watchers
	stops    []func()
	disposed bool
}

// New binds an animated output to s. source is called once to seed the
// initial static value, and again whenever one of deps changes. The seed
// never starts an animation.
func New[T, I any](s *frame.Scheduler, source func() Target[T], tw tween.Func[T, I], diff tween.Diff[I], deps ...reactive.Notifier) *Output[T, I] {
	if s == nil {
		panic(ErrNoScheduler)
	}
	if source == nil {
		panic(ErrNilSource)
	}
	if tw == nil || diff == nil {
		panic(ErrNilTween)
	}

	initial := source().Value
	o := &Output[T, I]{
		sched:  s,
		source: source,
		tween:  tw,
		diff:   diff,
	}
	o.st.setStatic(initial)
	o.value = tw(initial, initial, 1)

	o.stops = append(o.stops, s.Subscribe(o.update, o.notify))
	for _, d := range deps {
		o.stops = append(o.stops, d.Watch(o.Refresh))
	}
	return o
}

// FromContext is New with the scheduler taken from ctx. It panics with
// ErrNoScheduler when ctx carries none.
func FromContext[T, I any](ctx context.Context, source func() Target[T], tw tween.Func[T, I], diff tween.Diff[I], deps ...reactive.Notifier) *Output[T, I] {
	s, ok := frame.FromContext(ctx)
	if !ok {
		panic(ErrNoScheduler)
	}
	return New(s, source, tw, diff, deps...)
}

// NewNumber binds a numeric output using linear interpolation.
func NewNumber[T tween.Number](s *frame.Scheduler, source func() Target[T], deps ...reactive.Notifier) *Output[T, T] {
	return New(s, source, tween.Linear[T](), tween.Subtract[T], deps...)
}

// NewVector binds an output for a type with componentwise arithmetic.
func NewVector[T tween.Vector[T]](s *frame.Scheduler, source func() Target[T], deps ...reactive.Notifier) *Output[T, T] {
	return New(s, source, tween.Lerp[T](), tween.SubVector[T], deps...)
}

// Refresh re-reads the source and applies the target it returns.
func (o *Output[T, I]) Refresh() {
	if o.disposed {
		return
	}
	o.Apply(o.source())
}

// Apply feeds a new target through the mode state machine and requests a
// frame.
func (o *Output[T, I]) Apply(t Target[T]) {
	if o.disposed {
		return
	}
	now := o.sched.Now()
	o.st.prune(now)

	switch o.st.kind {
	case StatusStatic, StatusSnap:
		switch t.Mode {
		case Start, ReplaceOrStart:
			o.start(o.st.value, t, now)
		default:
			o.st.setSnap(t.Value)
		}
	case StatusRunning:
		switch t.Mode {
		case Start:
			o.st.records.PushFront(o.newRecord(o.st.value, t, now))
			o.st.value = t.Value
			o.st.toInterpolated = o.endpoint(t.Value)
		case ReplaceOrStart, ReplaceOrSnap:
			r := o.st.front()
			r.to = t.Value
			r.toInterpolated = o.endpoint(t.Value)
			o.st.value = t.Value
			o.st.toInterpolated = r.toInterpolated
		default:
			o.st.setSnap(t.Value)
		}
	}

	o.sched.RequestFrame()
}

func (o *Output[T, I]) start(from T, t Target[T], now time.Time) {
	r := o.newRecord(from, t, now)
	o.st.kind = StatusRunning
	o.st.value = t.Value
	o.st.toInterpolated = r.toInterpolated
	o.st.records = list.New()
	o.st.records.PushFront(r)
}

func (o *Output[T, I]) newRecord(from T, t Target[T], now time.Time) *record[T, I] {
	ease := t.Easing
	if ease == nil {
		ease = DefaultEasing
	}
	return &record[T, I]{
		from:           from,
		to:             t.Value,
		toInterpolated: o.endpoint(t.Value),
		start:          now,
		duration:       t.Duration,
		easing:         ease,
	}
}

func (o *Output[T, I]) endpoint(v T) I {
	return o.tween(v, v, 1)
}

// Read computes the current value. While animations are running it also
// requests the next frame.
func (o *Output[T, I]) Read() I {
	if o.disposed {
		return o.value
	}
	if o.st.kind != StatusStatic {
		o.version++
	}
	o.value = o.blend(o.sched.Now())
	return o.value
}

func (o *Output[T, I]) blend(now time.Time) I {
	switch o.st.kind {
	case StatusSnap:
		v := o.endpoint(o.st.value)
		o.st.setStatic(o.st.value)
		return v
	case StatusRunning:
		o.st.prune(now)
		if o.st.kind == StatusSnap {
			return o.endpoint(o.st.value)
		}

		result := o.st.toInterpolated
		for e := o.st.records.Front(); e != nil; e = e.Next() {
			r := e.Value.(*record[T, I])
			current := o.tween(r.from, r.to, r.progress(now))
			result = o.diff(result, o.diff(r.toInterpolated, current))
		}
		o.sched.RequestFrame()
		return result
	default:
		return o.endpoint(o.st.value)
	}
}

// update runs in the scheduler's first pass.
func (o *Output[T, I]) update(time.Time) {
	if o.st.kind != StatusStatic {
		o.Read()
	}
}

// notify runs in the scheduler's second pass, after every output updated.
func (o *Output[T, I]) notify() {
	if o.version == o.notified {
		return
	}
	o.notified = o.version
	o.watchers.Notify()
}

// Watch registers fn to run after every frame that changed the value.
func (o *Output[T, I]) Watch(fn func()) (stop func()) {
	return o.watchers.Watch(fn)
}

// Value returns the value computed by the last Read or frame.
func (o *Output[T, I]) Value() I { return o.value }

// Target returns the value the output is heading for.
func (o *Output[T, I]) Target() T { return o.st.value }

// Status returns the current status kind without pruning.
func (o *Output[T, I]) Status() StatusKind { return o.st.kind }

// Records returns the number of animation records held, finished or not.
func (o *Output[T, I]) Records() int {
	if o.st.records == nil {
		return 0
	}
	return o.st.records.Len()
}

func (o *Output[T, I]) Disposed() bool { return o.disposed }

// Dispose detaches the output from its scheduler and sources and drops any
// records in flight. The last value stays readable.
func (o *Output[T, I]) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	for _, stop := range o.stops {
		stop()
	}
	o.stops = nil
	o.st.setStatic(o.st.value)
}
