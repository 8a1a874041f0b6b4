package easing

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownEasing is returned by Lookup for names missing from the catalog.
var ErrUnknownEasing = errors.New("easing: unknown easing")

var catalog = map[string]Func{
	"linear":  Linear,
	"reverse": Reverse,

	"quad-in":     QuadIn,
	"quad-out":    QuadOut,
	"quad-in-out": QuadInOut,

	"cubic-in":     CubicIn,
	"cubic-out":    CubicOut,
	"cubic-in-out": CubicInOut,

	"quart-in":     QuartIn,
	"quart-out":    QuartOut,
	"quart-in-out": QuartInOut,

	"quint-in":     QuintIn,
	"quint-out":    QuintOut,
	"quint-in-out": QuintInOut,

	"sine-in":     SineIn,
	"sine-out":    SineOut,
	"sine-in-out": SineInOut,

	"circ-in":     CircIn,
	"circ-out":    CircOut,
	"circ-in-out": CircInOut,

	"expo-in":     ExpoIn,
	"expo-out":    ExpoOut,
	"expo-in-out": ExpoInOut,

	"back-in":     BackIn,
	"back-out":    BackOut,
	"back-in-out": BackInOut,

	"bounce-in":     BounceIn,
	"bounce-out":    BounceOut,
	"bounce-in-out": BounceInOut,

	"elastic-in":     ElasticIn,
	"elastic-out":    ElasticOut,
	"elastic-in-out": ElasticInOut,
}

// Lookup returns the easing registered under name.
func Lookup(name string) (Func, error) {
	fn, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// MustLookup is like Lookup but panics on unknown names.
func MustLookup(name string) Func {
	fn, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return fn
}

// Names lists the catalog in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
