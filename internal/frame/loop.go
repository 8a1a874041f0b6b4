package frame

import (
	"context"
	"time"
)

// Loop is a Platform backed by a goroutine running Run. Frame callbacks and
// posted functions all execute on that goroutine, one at a time.
type Loop struct {
	interval time.Duration
	posts    chan func()
	done     chan struct{}
	queue    callbackQueue
}

// NewLoop creates a loop firing frames at roughly fps per second.
func NewLoop(fps int) *Loop {
	if fps <= 0 {
		fps = 60
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		posts:    make(chan func(), 64),
		done:     make(chan struct{}),
	}
}

func (l *Loop) Now() time.Time { return time.Now() }

// RequestAnimationFrame must be called from the loop goroutine.
func (l *Loop) RequestAnimationFrame(cb func(time.Time)) func() {
	return l.queue.add(cb)
}

// Post schedules fn on the loop goroutine. It is safe to call from any
// goroutine and reports false once the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.posts <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Run processes posts and frames until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.posts:
			fn()
		case now := <-ticker.C:
			for _, cb := range l.queue.drain() {
				cb(now)
			}
		}
	}
}
