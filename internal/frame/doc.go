// Package frame coalesces per-frame update requests into host frame callbacks.
//
// A [Scheduler] owns at most one pending registration with its [Platform] at
// a time. Any number of animated outputs call [Scheduler.RequestFrame]; when
// the platform fires, every subscriber is updated and then notified, in two
// separate passes, so no subscriber observes a half-updated peer.
//
// Platforms:
//
//   - [Manual]: deterministic virtual clock for tests and headless runs
//   - [Loop]: goroutine-owned event loop driven by a ticker
//
// The bubbletea host in internal/tui provides a third platform.
//
// # Example
//
//	loop := frame.NewLoop(60)
//	sched := frame.New(loop)
//	defer sched.Dispose()
//	go loop.Run(ctx)
//
// # Thread Safety
//
// Schedulers and platforms are NOT thread-safe. Everything except
// [Loop.Post] must run on the goroutine that owns the platform.
package frame
