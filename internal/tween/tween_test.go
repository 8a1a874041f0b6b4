package tween

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinear(t *testing.T) {
	lerp := Linear[float64]()
	assert.Equal(t, 0.0, lerp(0, 10, 0))
	assert.Equal(t, 5.0, lerp(0, 10, 0.5))
	assert.Equal(t, 10.0, lerp(0, 10, 1))
	assert.Equal(t, 10.0, lerp(10, 10, 1))
	assert.InDelta(t, 11.0, lerp(0, 10, 1.1), 1e-12, "overshoot must not be clamped")
}

func TestLinearIntegers(t *testing.T) {
	assert.Equal(t, 50, Linear[int]()(0, 100, 0.5))
	assert.Equal(t, uint8(55), Linear[uint8]()(100, 10, 0.5), "unsigned must not wrap when decreasing")
}

func TestSubtract(t *testing.T) {
	assert.Equal(t, 3.0, Subtract(5.0, 2.0))
	assert.Equal(t, -7, Subtract(3, 10))
}

func TestVec2Lerp(t *testing.T) {
	lerp := Lerp[Vec2]()
	got := lerp(Vec2{0, 0}, Vec2{200, 100}, 0.25)
	assert.InDelta(t, 50.0, got.X, 1e-12)
	assert.InDelta(t, 25.0, got.Y, 1e-12)
	assert.Equal(t, Vec2{X: -1, Y: 2}, SubVector(Vec2{1, 3}, Vec2{2, 1}))
}

func TestColorEndpoints(t *testing.T) {
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}

	for _, space := range []ColorSpace{RGB, HCL, HSV, Lab, Luv} {
		t.Run(string(space), func(t *testing.T) {
			fn, err := Color(space)
			require.NoError(t, err)

			start := fn(red, blue, 0)
			end := fn(red, blue, 1)
			assert.InDelta(t, red.R, start.R, 1e-4)
			assert.InDelta(t, blue.B, end.B, 1e-4)
			assert.InDelta(t, 0.0, end.R, 1e-4)
		})
	}
}

func TestColorUnknownSpace(t *testing.T) {
	_, err := Color("cmyk")
	assert.ErrorIs(t, err, ErrUnknownTween)
}

func TestColorDiff(t *testing.T) {
	d := ColorDiff(colorful.Color{R: 0.5, G: 0.5, B: 0.5}, colorful.Color{R: 0.25, G: 0.75, B: 0.5})
	assert.InDelta(t, 0.25, d.R, 1e-12)
	assert.InDelta(t, -0.25, d.G, 1e-12)
	assert.InDelta(t, 0.0, d.B, 1e-12)
}

func TestSplice(t *testing.T) {
	assert.Equal(t, "abc", Splice("abc", "xyz", 0))
	assert.Equal(t, "xyz", Splice("abc", "xyz", 1))
	assert.Equal(t, "Hel", Splice("", "Hello ", 0.5))
	assert.Equal(t, "wxcd", Splice("abcd", "wxyz", 0.5))
	assert.Equal(t, "", Splice("abc", "", 1))
	assert.Equal(t, "xyz", Splice("abc", "xyz", 1.4), "overshoot is clamped to the string bounds")
	assert.Equal(t, "héllo", Splice("", "héllo", 1))
}

func TestKeep(t *testing.T) {
	assert.Equal(t, "b", Keep("a", "b"))
	assert.Equal(t, 2, Keep(1, 2))
}
