package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/glide/internal/anim"
)

var ErrInvalidScenario = errors.New("sim: invalid scenario")

// Step applies Target once the scenario clock reaches At.
type Step struct {
	At     time.Duration
	Target anim.Target[float64]
}

// Scenario is a scripted sequence of targets for one numeric output.
type Scenario struct {
	Name          string
	Initial       float64
	Steps         []Step
	Length        time.Duration
	FrameInterval time.Duration
}

// Validate checks timing. Steps must be ordered and fall inside Length.
func (sc Scenario) Validate() error {
	if sc.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame interval must be positive, got %s", ErrInvalidScenario, sc.FrameInterval)
	}
	if sc.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %s", ErrInvalidScenario, sc.Length)
	}
	var prev time.Duration
	for i, st := range sc.Steps {
		switch {
		case st.At < 0:
			return StepError{Index: i, At: st.At, Reason: "negative time"}
		case st.At < prev:
			return StepError{Index: i, At: st.At, Reason: "out of order"}
		case st.At > sc.Length:
			return StepError{Index: i, At: st.At, Reason: "after end of scenario"}
		}
		prev = st.At
	}
	return nil
}

// StepError reports a badly placed step.
type StepError struct {
	Index  int
	At     time.Duration
	Reason string
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d at %s: %s", e.Index, e.At, e.Reason)
}

func (e StepError) Unwrap() error { return ErrInvalidScenario }

// Sample is the output observed after one frame.
type Sample struct {
	Time    time.Duration
	Value   float64
	Target  float64
	Records int
	Status  anim.StatusKind
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(s Sample)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Sample)

func (f ObserverFunc) OnFrame(s Sample) { f(s) }

type Result struct {
	Scenario      string
	Samples       []Sample
	Registrations int
	Frames        int
	Metrics       map[string]float64
}

// Times returns sample times in seconds.
func (r *Result) Times() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Time.Seconds()
	}
	return out
}

func (r *Result) Values() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Value
	}
	return out
}

// Final is the last sample, or the zero Sample for an empty result.
func (r *Result) Final() Sample {
	if len(r.Samples) == 0 {
		return Sample{}
	}
	return r.Samples[len(r.Samples)-1]
}
