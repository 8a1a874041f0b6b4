package anim

import (
	"fmt"
	"time"

	"github.com/san-kum/glide/internal/easing"
)

// Mode controls how a new target interacts with the animations in flight.
type Mode int

const (
	// Start layers a new animation on top of whatever is displayed.
	Start Mode = iota
	// ReplaceOrStart steers the newest animation toward the new target, or
	// starts one when idle.
	ReplaceOrStart
	// ReplaceOrSnap steers the newest animation toward the new target, or
	// jumps when idle.
	ReplaceOrSnap
	// Snap cancels every animation and jumps to the target.
	Snap
)

var modeNames = map[Mode]string{
	Start:          "start",
	ReplaceOrStart: "replace-or-start",
	ReplaceOrSnap:  "replace-or-snap",
	Snap:           "snap",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the names produced by String.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return Start, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

const (
	DefaultDuration = 500 * time.Millisecond
	DefaultMode     = Start
)

// DefaultEasing is applied when a target carries no easing.
var DefaultEasing easing.Func = easing.SineOut

// Target is one requested end value and how to get there.
type Target[T any] struct {
	Value    T
	Duration time.Duration
	Easing   easing.Func
	Mode     Mode
}

type settings struct {
	duration time.Duration
	easing   easing.Func
	mode     Mode
}

type Option func(*settings)

func WithDuration(d time.Duration) Option {
	return func(s *settings) { s.duration = d }
}

func WithEasing(fn easing.Func) Option {
	return func(s *settings) { s.easing = fn }
}

func WithMode(m Mode) Option {
	return func(s *settings) { s.mode = m }
}

// To builds a target for v. Unset options take the package defaults.
func To[T any](v T, opts ...Option) Target[T] {
	s := settings{duration: DefaultDuration, easing: DefaultEasing, mode: DefaultMode}
	for _, opt := range opts {
		opt(&s)
	}
	if s.easing == nil {
		s.easing = DefaultEasing
	}
	return Target[T]{Value: v, Duration: s.duration, Easing: s.easing, Mode: s.mode}
}
