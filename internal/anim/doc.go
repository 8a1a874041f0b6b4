// Package anim turns a stream of target values into a continuously eased
// output value.
//
// The package is built from a few pieces:
//
//   - [Target]: a value to ease toward, with duration, easing and [Mode]
//   - [Mode]: how a new target interacts with animations already running
//   - [Output]: one bound animated value, observable through Watch
//
// Overlapping animations are blended additively. Each in-flight record
// contributes its remaining deficit (distance to its own end point) and the
// output is the newest end point minus the sum of all deficits. Starting a new
// animation mid-flight therefore never makes the value jump, and the value
// converges on the latest target however many records overlap.
//
// # Example
//
//	platform := frame.NewManual(time.Time{})
//	sched := frame.New(platform)
//	target := reactive.NewSignal(anim.To(0.0))
//	out := anim.NewNumber(sched, target.Get, target)
//	target.Set(anim.To(10.0, anim.WithDuration(time.Second)))
//	platform.Step(500 * time.Millisecond)
//	_ = out.Value()
//
// # Thread Safety
//
// Outputs are NOT thread-safe. Targets must be applied and frames fired on
// the goroutine that owns the scheduler's platform.
package anim
