package frame

import (
	"context"
	"testing"
	"time"
)

func TestRequestFrameCoalesces(t *testing.T) {
	m := NewManual(time.Time{})
	s := New(m)

	for i := 0; i < 10; i++ {
		s.RequestFrame()
	}

	if m.Registrations() != 1 {
		t.Errorf("expected 1 platform registration, got %d", m.Registrations())
	}
	if !s.Pending() {
		t.Error("expected a pending frame")
	}

	if fired := m.Step(16 * time.Millisecond); fired != 1 {
		t.Errorf("expected 1 callback, got %d", fired)
	}
	if s.Pending() {
		t.Error("pending flag not cleared after frame")
	}

	s.RequestFrame()
	if m.Registrations() != 2 {
		t.Errorf("expected a fresh registration after the frame fired, got %d", m.Registrations())
	}
}

func TestBroadcastTwoPhases(t *testing.T) {
	m := NewManual(time.Time{})
	s := New(m)

	var log []string
	s.Subscribe(func(time.Time) { log = append(log, "update-a") }, func() { log = append(log, "notify-a") })
	s.Subscribe(func(time.Time) { log = append(log, "update-b") }, func() { log = append(log, "notify-b") })

	s.RequestFrame()
	m.Step(time.Millisecond)

	expected := []string{"update-a", "update-b", "notify-a", "notify-b"}
	if len(log) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, log)
	}
	for i := range expected {
		if log[i] != expected[i] {
			t.Errorf("step %d: expected %s, got %s", i, expected[i], log[i])
		}
	}
	if s.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", s.Frames())
	}
}

func TestNowDuringFrame(t *testing.T) {
	m := NewManual(time.Time{})
	s := New(m)

	var seen time.Time
	s.Subscribe(func(now time.Time) {
		m.Advance(time.Second)
		seen = s.Now()
	}, nil)

	s.RequestFrame()
	m.Step(10 * time.Millisecond)

	if want := Epoch.Add(10 * time.Millisecond); !seen.Equal(want) {
		t.Errorf("Now inside frame = %v, want frame time %v", seen, want)
	}
	if !s.Now().Equal(m.Now()) {
		t.Error("Now outside frame should read the clock")
	}
}

func TestUnsubscribe(t *testing.T) {
	m := NewManual(time.Time{})
	s := New(m)

	calls := 0
	unsub := s.Subscribe(func(time.Time) { calls++ }, nil)
	unsub()
	unsub()

	s.RequestFrame()
	m.Step(time.Millisecond)
	if calls != 0 {
		t.Errorf("unsubscribed participant called %d times", calls)
	}
	if s.Subscribers() != 0 {
		t.Errorf("expected no subscribers, got %d", s.Subscribers())
	}
}

func TestDisposeCancelsPending(t *testing.T) {
	m := NewManual(time.Time{})
	s := New(m)

	calls := 0
	s.Subscribe(func(time.Time) { calls++ }, nil)
	s.RequestFrame()
	s.Dispose()
	s.Dispose()

	if m.Pending() != 0 {
		t.Errorf("expected cancelled registration, %d pending", m.Pending())
	}
	m.Step(time.Millisecond)
	if calls != 0 {
		t.Error("broadcast after dispose")
	}

	s.RequestFrame()
	if m.Registrations() != 1 {
		t.Errorf("RequestFrame after dispose registered again: %d", m.Registrations())
	}
}

func TestWithClock(t *testing.T) {
	m := NewManual(time.Time{})
	clock := NewManual(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	s := New(m, WithClock(clock))
	if !s.Now().Equal(clock.Now()) {
		t.Errorf("WithClock ignored: %v", s.Now())
	}
}

type bare struct{ queue callbackQueue }

func (b *bare) RequestAnimationFrame(cb func(time.Time)) func() { return b.queue.add(cb) }

func TestSystemClockFallback(t *testing.T) {
	s := New(&bare{})
	if time.Since(s.Now()) > time.Minute {
		t.Error("expected wall-clock time for platforms without a clock")
	}
}

func TestContextBinding(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Error("expected no scheduler in empty context")
	}

	s := New(NewManual(time.Time{}))
	ctx := WithScheduler(context.Background(), s)
	got, ok := FromContext(ctx)
	if !ok || got != s {
		t.Error("scheduler not recovered from context")
	}
}

func TestLoopRunsPostsAndFrames(t *testing.T) {
	loop := NewLoop(200)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	fired := make(chan struct{})
	loop.Post(func() {
		s := New(loop)
		s.Subscribe(func(time.Time) { close(fired) }, nil)
		s.RequestFrame()
	})

	errc := make(chan error, 1)
	go func() { errc <- loop.Run(ctx) }()

	select {
	case <-fired:
	case <-ctx.Done():
		t.Fatal("frame never fired")
	}

	cancel()
	if err := <-errc; err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if loop.Post(func() {}) {
		t.Error("Post accepted work after the loop stopped")
	}
}

func TestDeferredFlush(t *testing.T) {
	d := NewDeferred()
	s := New(d)

	var got time.Time
	s.Subscribe(func(now time.Time) { got = now }, nil)
	s.RequestFrame()
	s.RequestFrame()
	if d.Pending() != 1 {
		t.Fatalf("expected 1 pending callback, got %d", d.Pending())
	}

	at := Epoch.Add(time.Second)
	if n := d.Flush(at); n != 1 {
		t.Errorf("expected 1 callback, got %d", n)
	}
	if !got.Equal(at) {
		t.Errorf("expected frame time %v, got %v", at, got)
	}
	if d.Flush(at) != 0 {
		t.Error("flush should drain the queue")
	}
}
