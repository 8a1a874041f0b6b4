// Package tween holds interpolation strategies for animated values.
//
// A Func maps (from, to, eased progress) to an interpolated value. Overlapping
// animations are blended by subtracting interpolated values, so every strategy
// is paired with a Diff for its interpolated type.
package tween

import (
	"errors"
	"fmt"
)

// ErrUnknownTween is returned when a strategy name is not registered.
var ErrUnknownTween = errors.New("tween: unknown tween")

// Func interpolates between from and to. progress is eased and may leave [0,1].
type Func[T, I any] func(from, to T, progress float64) I

// Diff returns a - b for an interpolated type.
type Diff[I any] func(a, b I) I

// Number covers the arithmetic types the default strategy supports.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Linear is the default strategy: (to - from) * progress + from.
func Linear[T Number]() Func[T, T] {
	return func(from, to T, progress float64) T {
		return T(float64(from) + (float64(to)-float64(from))*progress)
	}
}

// Subtract is the arithmetic Diff for numbers.
func Subtract[T Number](a, b T) T {
	return a - b
}

// Vector is satisfied by value types with componentwise arithmetic.
type Vector[T any] interface {
	Add(T) T
	Sub(T) T
	Scale(float64) T
}

// Lerp is the default strategy for Vector types.
func Lerp[T Vector[T]]() Func[T, T] {
	return func(from, to T, progress float64) T {
		return to.Sub(from).Scale(progress).Add(from)
	}
}

// SubVector is the Diff for Vector types.
func SubVector[T Vector[T]](a, b T) T {
	return a.Sub(b)
}

// Vec2 is a 2D point or offset.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) String() string       { return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y) }
