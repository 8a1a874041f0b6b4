package tween

// Splice transitions between strings by taking the head of to followed by
// the tail of from, both cut at progress. Positions are counted in runes.
func Splice(from, to string, progress float64) string {
	fr, tr := []rune(from), []rune(to)
	head := clampIndex(int(progress*float64(len(tr))), len(tr))
	tail := clampIndex(int(progress*float64(len(fr))), len(fr))

	out := make([]rune, 0, head+len(fr)-tail)
	out = append(out, tr[:head]...)
	out = append(out, fr[tail:]...)
	return string(out)
}

// Keep is a degenerate Diff returning b. Strings have no meaningful
// subtraction, so overlapping text animations show the newest one only and
// may glitch when it starts.
func Keep[I any](_, b I) I {
	return b
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
