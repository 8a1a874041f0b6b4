// Package easing is a catalog of easing functions mapping normalized progress
// in [0,1] to eased progress.
//
// Every function returns exactly 0 at t=0 and 1 at t=1 (Reverse excepted).
// The back and elastic families overshoot outside [0,1] at interior points and
// bounce is not monotonic; callers must not clamp the result.
//
// Formulas follow https://easings.net. The polynomial, sine and circular
// families delegate to github.com/fogleman/ease, whose definitions are the
// same Penner equations.
package easing

import (
	"math"

	"github.com/fogleman/ease"
)

// Func maps normalized progress to eased progress.
type Func func(t float64) float64

const (
	c1 = 1.70158
	c2 = c1 * 1.525
	c3 = c1 + 1
	c4 = (2 * math.Pi) / 3
	c5 = (2 * math.Pi) / 4.5

	bounceN1 = 7.5625
	bounceD1 = 2.75
)

var (
	Linear Func = ease.Linear

	QuadIn    Func = ease.InQuad
	QuadOut   Func = ease.OutQuad
	QuadInOut Func = ease.InOutQuad

	CubicIn    Func = ease.InCubic
	CubicOut   Func = ease.OutCubic
	CubicInOut Func = ease.InOutCubic

	QuartIn    Func = ease.InQuart
	QuartOut   Func = ease.OutQuart
	QuartInOut Func = ease.InOutQuart

	QuintIn    Func = ease.InQuint
	QuintOut   Func = ease.OutQuint
	QuintInOut Func = ease.InOutQuint

	SineIn    Func = ease.InSine
	SineOut   Func = ease.OutSine
	SineInOut Func = ease.InOutSine

	CircIn    Func = ease.InCirc
	CircOut   Func = ease.OutCirc
	CircInOut Func = ease.InOutCirc

	ExpoIn    Func = expoIn
	ExpoOut   Func = expoOut
	ExpoInOut Func = expoInOut

	BackIn    Func = backIn
	BackOut   Func = backOut
	BackInOut Func = backInOut

	BounceIn    Func = bounceIn
	BounceOut   Func = bounceOut
	BounceInOut Func = bounceInOut

	ElasticIn    Func = elasticIn
	ElasticOut   Func = elasticOut
	ElasticInOut Func = elasticInOut
)

// Reverse is a linear easing running from 1 to 0.
func Reverse(t float64) float64 { return 1 - t }

func expoIn(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

func expoOut(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func expoInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	}
	return (2 - math.Pow(2, -20*t+10)) / 2
}

func backIn(t float64) float64 {
	return c3*t*t*t - c1*t*t
}

func backOut(t float64) float64 {
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

func backInOut(t float64) float64 {
	if t < 0.5 {
		return (math.Pow(2*t, 2) * ((c2+1)*2*t - c2)) / 2
	}
	return (math.Pow(2*t-2, 2)*((c2+1)*(t*2-2)+c2) + 2) / 2
}

func bounceOut(t float64) float64 {
	switch {
	case t < 1/bounceD1:
		return bounceN1 * t * t
	case t < 2/bounceD1:
		t -= 1.5 / bounceD1
		return bounceN1*t*t + 0.75
	case t < 2.5/bounceD1:
		t -= 2.25 / bounceD1
		return bounceN1*t*t + 0.9375
	default:
		t -= 2.625 / bounceD1
		return bounceN1*t*t + 0.984375
	}
}

func bounceIn(t float64) float64 {
	return 1 - bounceOut(1-t)
}

func bounceInOut(t float64) float64 {
	if t < 0.5 {
		return (1 - bounceOut(1-2*t)) / 2
	}
	return (1 + bounceOut(2*t-1)) / 2
}

func elasticIn(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*c4)
}

func elasticOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}

func elasticInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*c5)) / 2
	}
	return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*c5))/2 + 1
}
