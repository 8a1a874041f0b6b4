package metrics

import (
	"math"

	"github.com/san-kum/glide/internal/sim"
)

// SettleTime reports the time in seconds from which every sample stayed
// within tolerance of its target. It is -1 while the value has not settled.
type SettleTime struct {
	name      string
	tolerance float64
	settled   float64
}

func NewSettleTime(tolerance float64) *SettleTime {
	return &SettleTime{name: "settle_time", tolerance: tolerance, settled: -1}
}

func (s *SettleTime) Name() string { return s.name }

func (s *SettleTime) Observe(smp sim.Sample) {
	if math.Abs(smp.Value-smp.Target) > s.tolerance {
		s.settled = -1
		return
	}
	if s.settled < 0 {
		s.settled = smp.Time.Seconds()
	}
}

func (s *SettleTime) Value() float64 { return s.settled }

func (s *SettleTime) Reset() { s.settled = -1 }

// BusyFrames counts samples taken while records were in flight.
type BusyFrames struct {
	name  string
	count int
}

func NewBusyFrames() *BusyFrames {
	return &BusyFrames{name: "busy_frames"}
}

func (b *BusyFrames) Name() string { return b.name }

func (b *BusyFrames) Observe(s sim.Sample) {
	if s.Records > 0 {
		b.count++
	}
}

func (b *BusyFrames) Value() float64 { return float64(b.count) }

func (b *BusyFrames) Reset() { b.count = 0 }

// Standard returns one fresh instance of every metric.
func Standard() []sim.Metric {
	return []sim.Metric{
		NewMaxJump(),
		NewOvershoot(),
		NewSettleTime(1e-3),
		NewTravel(),
		NewBusyFrames(),
	}
}
