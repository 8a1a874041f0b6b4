package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalNotifies(t *testing.T) {
	s := NewSignal(1)
	calls := 0
	stop := s.Watch(func() { calls++ })

	s.Set(2)
	s.Set(2)
	assert.Equal(t, 2, calls, "plain signals notify on every Set")
	assert.Equal(t, 2, s.Get())

	stop()
	s.Set(3)
	assert.Equal(t, 2, calls)
	stop()
}

func TestComparableSignalSkipsEqual(t *testing.T) {
	s := NewComparableSignal("a")
	calls := 0
	s.Watch(func() { calls++ })

	s.Set("a")
	s.Set("b")
	s.Update(func(v string) string { return v + "c" })
	assert.Equal(t, 2, calls)
	assert.Equal(t, "bc", s.Get())
}

func TestWatchersOrderAndReentry(t *testing.T) {
	var w Watchers
	var seen []int
	w.Watch(func() { seen = append(seen, 1) })
	w.Watch(func() {
		seen = append(seen, 2)
		w.Watch(func() { seen = append(seen, 3) })
	})

	w.Notify()
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 3, w.Len())
}

func TestEffect(t *testing.T) {
	a := NewSignal(1)
	b := NewSignal(10)
	sum := 0
	stop := Effect(func() { sum = a.Get() + b.Get() }, a, b)
	assert.Equal(t, 11, sum)

	a.Set(2)
	assert.Equal(t, 12, sum)
	b.Set(20)
	assert.Equal(t, 22, sum)

	stop()
	a.Set(100)
	assert.Equal(t, 22, sum)
}
