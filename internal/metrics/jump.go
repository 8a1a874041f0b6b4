package metrics

import (
	"math"

	"github.com/san-kum/glide/internal/sim"
)

// MaxJump is the largest change in value between consecutive samples.
// Large values outside of snaps point at discontinuities.
type MaxJump struct {
	name    string
	prev    float64
	started bool
	max     float64
}

func NewMaxJump() *MaxJump {
	return &MaxJump{name: "max_jump"}
}

func (m *MaxJump) Name() string { return m.name }

func (m *MaxJump) Observe(s sim.Sample) {
	if m.started {
		m.max = math.Max(m.max, math.Abs(s.Value-m.prev))
	}
	m.prev = s.Value
	m.started = true
}

func (m *MaxJump) Value() float64 { return m.max }

func (m *MaxJump) Reset() {
	m.prev = 0
	m.started = false
	m.max = 0
}

// Travel is the total distance covered by the value.
type Travel struct {
	name    string
	prev    float64
	started bool
	total   float64
}

func NewTravel() *Travel {
	return &Travel{name: "travel"}
}

func (t *Travel) Name() string { return t.name }

func (t *Travel) Observe(s sim.Sample) {
	if t.started {
		t.total += math.Abs(s.Value - t.prev)
	}
	t.prev = s.Value
	t.started = true
}

func (t *Travel) Value() float64 { return t.total }

func (t *Travel) Reset() {
	t.prev = 0
	t.started = false
	t.total = 0
}
