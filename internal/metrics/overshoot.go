package metrics

import (
	"math"

	"github.com/san-kum/glide/internal/sim"
)

// Overshoot is the furthest the value strayed outside the range spanned by
// the initial value and every target seen so far.
type Overshoot struct {
	name    string
	lo, hi  float64
	started bool
	max     float64
}

func NewOvershoot() *Overshoot {
	return &Overshoot{name: "overshoot"}
}

func (o *Overshoot) Name() string { return o.name }

func (o *Overshoot) Observe(s sim.Sample) {
	if !o.started {
		o.lo, o.hi = s.Value, s.Value
		o.started = true
	}
	o.lo = math.Min(o.lo, s.Target)
	o.hi = math.Max(o.hi, s.Target)

	o.max = math.Max(o.max, s.Value-o.hi)
	o.max = math.Max(o.max, o.lo-s.Value)
}

func (o *Overshoot) Value() float64 { return o.max }

func (o *Overshoot) Reset() {
	o.lo, o.hi = 0, 0
	o.started = false
	o.max = 0
}
