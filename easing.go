package tween

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
)

// ErrUnknownEasing is returned when a name or number does not select one of
// the 30 built-in curves.
var ErrUnknownEasing = errors.New("unknown easing")

// Easing selects one of the built-in easing curves. The numeric values are
// stable and are what scripts send when they pass an easing as a number.
type Easing uint8

const (
	Linear Easing = iota
	InSine
	OutSine
	InOutSine
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
	InQuint
	OutQuint
	InOutQuint
	InExpo
	OutExpo
	InOutExpo
	InCirc
	OutCirc
	InOutCirc
	InBack
	OutBack
	InOutBack
	InElastic
	OutElastic
	InOutElastic
	InBounce
	OutBounce
	InOutBounce

	easingCount
)

var easingFuncs = [easingCount]ease.TweenFunc{
	Linear:       ease.Linear,
	InSine:       ease.InSine,
	OutSine:      ease.OutSine,
	InOutSine:    ease.InOutSine,
	InQuad:       ease.InQuad,
	OutQuad:      ease.OutQuad,
	InOutQuad:    ease.InOutQuad,
	InCubic:      ease.InCubic,
	OutCubic:     ease.OutCubic,
	InOutCubic:   ease.InOutCubic,
	InQuart:      ease.InQuart,
	OutQuart:     ease.OutQuart,
	InOutQuart:   ease.InOutQuart,
	InQuint:      ease.InQuint,
	OutQuint:     ease.OutQuint,
	InOutQuint:   ease.InOutQuint,
	InExpo:       ease.InExpo,
	OutExpo:      ease.OutExpo,
	InOutExpo:    ease.InOutExpo,
	InCirc:       ease.InCirc,
	OutCirc:      ease.OutCirc,
	InOutCirc:    ease.InOutCirc,
	InBack:       ease.InBack,
	OutBack:      ease.OutBack,
	InOutBack:    ease.InOutBack,
	InElastic:    ease.InElastic,
	OutElastic:   ease.OutElastic,
	InOutElastic: ease.InOutElastic,
	InBounce:     ease.InBounce,
	OutBounce:    ease.OutBounce,
	InOutBounce:  ease.InOutBounce,
}

var easingNames = [easingCount]string{
	Linear:       "Linear",
	InSine:       "In Sine",
	OutSine:      "Out Sine",
	InOutSine:    "InOut Sine",
	InQuad:       "In Quad",
	OutQuad:      "Out Quad",
	InOutQuad:    "InOut Quad",
	InCubic:      "In Cubic",
	OutCubic:     "Out Cubic",
	InOutCubic:   "InOut Cubic",
	InQuart:      "In Quart",
	OutQuart:     "Out Quart",
	InOutQuart:   "InOut Quart",
	InQuint:      "In Quint",
	OutQuint:     "Out Quint",
	InOutQuint:   "InOut Quint",
	InExpo:       "In Expo",
	OutExpo:      "Out Expo",
	InOutExpo:    "InOut Expo",
	InCirc:       "In Circ",
	OutCirc:      "Out Circ",
	InOutCirc:    "InOut Circ",
	InBack:       "In Back",
	OutBack:      "Out Back",
	InOutBack:    "InOut Back",
	InElastic:    "In Elastic",
	OutElastic:   "Out Elastic",
	InOutElastic: "InOut Elastic",
	InBounce:     "In Bounce",
	OutBounce:    "Out Bounce",
	InOutBounce:  "InOut Bounce",
}

// easingLookup maps a folded name ("inoutbounce") to its curve.
var easingLookup = func() map[string]Easing {
	m := make(map[string]Easing, easingCount)
	for e := Linear; e < easingCount; e++ {
		m[foldEasingName(easingNames[e])] = e
	}
	return m
}()

func foldEasingName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// Easings returns every built-in curve in enum order.
func Easings() []Easing {
	out := make([]Easing, easingCount)
	for i := range out {
		out[i] = Easing(i)
	}
	return out
}

// Valid reports whether e names a built-in curve.
func (e Easing) Valid() bool {
	return e < easingCount
}

// String returns the display name shown in easing pickers, e.g. "InOut Bounce".
func (e Easing) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Easing(%d)", uint8(e))
	}
	return easingNames[e]
}

// Func returns the gween easing function for e, so the same curve can be
// handed to gween.New. Unknown values return ease.Linear.
func (e Easing) Func() ease.TweenFunc {
	if !e.Valid() {
		return ease.Linear
	}
	return easingFuncs[e]
}

// Ease remaps normalized progress t. The input is not clamped: values outside
// [0, 1] are extrapolated by the curve's formula. Ease(0) is exactly 0 and
// Ease(1) is exactly 1 for every curve; back and elastic curves overshoot
// only strictly between the endpoints.
func (e Easing) Ease(t float32) float32 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return e.Func()(t, 0, 1, 1)
}

// ParseEasing resolves a curve by its display name ("InOut Bounce") or a
// compact spelling ("inOutBounce", "in-out-bounce"). Matching ignores case.
func ParseEasing(s string) (Easing, error) {
	if e, ok := easingLookup[foldEasingName(s)]; ok {
		return e, nil
	}
	return Linear, fmt.Errorf("tween: parse easing %q: %w", s, ErrUnknownEasing)
}

// UnmarshalJSON accepts either the enum number or a name understood by
// ParseEasing.
func (e *Easing) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n < 0 || n >= int(easingCount) {
			return fmt.Errorf("tween: parse easing %d: %w", n, ErrUnknownEasing)
		}
		*e = Easing(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("tween: parse easing: %w", err)
	}
	parsed, err := ParseEasing(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalJSON writes the display name.
func (e Easing) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}
