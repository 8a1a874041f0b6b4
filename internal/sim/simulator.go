package sim

import (
	"context"
	"time"

	"github.com/san-kum/glide/internal/anim"
	"github.com/san-kum/glide/internal/frame"
	"github.com/san-kum/glide/internal/logging"
	"github.com/san-kum/glide/internal/reactive"
)

// Simulator drives scenarios against a real animated output.
type Simulator struct {
	log       logging.Logger
	metrics   []Metric
	observers []Observer
}

type Option func(*Simulator)

func WithLogger(l logging.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

func New(opts ...Option) *Simulator {
	s := &Simulator{
		log:       logging.NewNoOpLogger(),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run plays sc on simulated time. Frames fire every FrameInterval and one
// sample is taken after each, plus one before the first.
func (s *Simulator) Run(ctx context.Context, sc Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	platform := frame.NewManual(time.Time{})
	sched := frame.New(platform, frame.WithLogger(s.log))
	defer sched.Dispose()

	next := reactive.NewSignal(anim.To(sc.Initial))
	out := anim.NewNumber(sched, next.Get, next)
	defer out.Dispose()

	for _, m := range s.metrics {
		m.Reset()
	}

	frames := int(sc.Length / sc.FrameInterval)
	result := &Result{
		Scenario: sc.Name,
		Samples:  make([]Sample, 0, frames+1),
		Metrics:  make(map[string]float64),
	}

	origin := platform.Now()
	observe := func() {
		v := out.Read()
		smp := Sample{
			Time:    platform.Now().Sub(origin),
			Value:   v,
			Target:  out.Target(),
			Records: out.Records(),
			Status:  out.Status(),
		}
		for _, m := range s.metrics {
			m.Observe(smp)
		}
		for _, obs := range s.observers {
			obs.OnFrame(smp)
		}
		result.Samples = append(result.Samples, smp)
	}

	observe()
	pending := sc.Steps
	for i := 1; i <= frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		frameAt := origin.Add(time.Duration(i) * sc.FrameInterval)
		for len(pending) > 0 && !origin.Add(pending[0].At).After(frameAt) {
			platform.Advance(origin.Add(pending[0].At).Sub(platform.Now()))
			next.Set(pending[0].Target)
			pending = pending[1:]
		}
		platform.Advance(frameAt.Sub(platform.Now()))
		platform.Fire()
		observe()
	}

	result.Registrations = platform.Registrations()
	result.Frames = sched.Frames()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.log.Debug("scenario finished",
		"scenario", sc.Name,
		"frames", result.Frames,
		"registrations", result.Registrations,
		"final", result.Final().Value)
	return result, nil
}

// Play runs sc in real time on its own frame loop, calling emit after every
// frame that changed the value. It returns when the scenario length elapses
// or ctx is done.
func (s *Simulator) Play(ctx context.Context, sc Scenario, emit func(Sample)) error {
	if err := sc.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, sc.Length)
	defer cancel()

	loop := frame.NewLoop(int(time.Second / sc.FrameInterval))
	start := time.Now()

	var next *reactive.Signal[anim.Target[float64]]
	loop.Post(func() {
		sched := frame.New(loop, frame.WithLogger(s.log))
		next = reactive.NewSignal(anim.To(sc.Initial))
		out := anim.NewNumber(sched, next.Get, next)
		out.Watch(func() {
			emit(Sample{
				Time:    time.Since(start),
				Value:   out.Value(),
				Target:  out.Target(),
				Records: out.Records(),
				Status:  out.Status(),
			})
		})
	})

	timers := make([]*time.Timer, 0, len(sc.Steps))
	for _, st := range sc.Steps {
		target := st.Target
		timers = append(timers, time.AfterFunc(st.At, func() {
			loop.Post(func() { next.Set(target) })
		}))
	}
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	s.log.Info("playing scenario", "scenario", sc.Name, "length", sc.Length)
	err := loop.Run(ctx)
	if ctx.Err() == context.DeadlineExceeded {
		return nil
	}
	return err
}
