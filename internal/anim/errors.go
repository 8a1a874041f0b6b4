package anim

import "errors"

// Misuse errors. They are raised as panics: they indicate a programming
// error, not a runtime condition.
var (
	// ErrNoScheduler indicates an output was bound without a frame scheduler.
	ErrNoScheduler = errors.New("anim: no frame scheduler bound; create one with frame.New and pass it or bind it with frame.WithScheduler")

	// ErrNilSource indicates a nil target provider.
	ErrNilSource = errors.New("anim: nil target source")

	// ErrNilTween indicates a nil tween or diff strategy.
	ErrNilTween = errors.New("anim: nil tween strategy")

	// ErrUnknownMode indicates a mode name that ParseMode does not recognise.
	ErrUnknownMode = errors.New("anim: unknown animation mode")
)
