package anim

import (
	"container/list"
	"time"

	"github.com/san-kum/glide/internal/easing"
)

// record is one in-flight transition.
type record[T, I any] struct {
	from           T
	to             T
	toInterpolated I
	start          time.Time
	duration       time.Duration
	easing         easing.Func
}

// finished reports whether the record no longer contributes to the output.
// Records without a positive duration are finished from the start.
func (r *record[T, I]) finished(now time.Time) bool {
	return r.duration <= 0 || now.After(r.start.Add(r.duration))
}

// progress is the eased, unclamped progress at now.
func (r *record[T, I]) progress(now time.Time) float64 {
	if r.duration <= 0 {
		return r.easing(1)
	}
	p := float64(now.Sub(r.start)) / float64(r.duration)
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	return r.easing(p)
}

// StatusKind is the coarse state of an Output.
type StatusKind int

const (
	// StatusStatic means nothing is animating.
	StatusStatic StatusKind = iota
	// StatusSnap settles to its value on the next read, then becomes static.
	StatusSnap
	// StatusRunning has at least one record in flight.
	StatusRunning
)

func (k StatusKind) String() string {
	switch k {
	case StatusStatic:
		return "static"
	case StatusSnap:
		return "snap"
	case StatusRunning:
		return "running"
	default:
		return "unknown"
	}
}

// status is owned by exactly one Output. value is the static or snap value,
// or the newest end point while running. records is ordered newest first
// and is never empty while running.
type status[T, I any] struct {
	kind           StatusKind
	value          T
	toInterpolated I
	records        *list.List
}

func (s *status[T, I]) setStatic(v T) {
	s.kind = StatusStatic
	s.value = v
	s.records = nil
}

func (s *status[T, I]) setSnap(v T) {
	s.kind = StatusSnap
	s.value = v
	s.records = nil
}

func (s *status[T, I]) front() *record[T, I] {
	return s.records.Front().Value.(*record[T, I])
}

// prune drops finished records and demotes an emptied status to snap.
func (s *status[T, I]) prune(now time.Time) {
	if s.kind != StatusRunning {
		return
	}
	for e := s.records.Front(); e != nil; {
		next := e.Next()
		if e.Value.(*record[T, I]).finished(now) {
			s.records.Remove(e)
		}
		e = next
	}
	if s.records.Len() == 0 {
		s.setSnap(s.value)
	}
}
