package emotion

import "math"

// Axis indices into a Vector.
const (
	axisJoySadness = iota
	axisAcceptanceDisgust
	axisAngerFear
	axisAnticipationSurprise
)

// Vector is an emotional state: four signed axes, each a bipolar pair of
// opposite emotions, clamped to [-1, 1]. The zero value is the neutral
// state. Vectors are value types; engine functions never mutate their
// input and always return a fresh copy.
type Vector struct {
	JoySadness           float64 `json:"joySadness"`
	AcceptanceDisgust    float64 `json:"acceptanceDisgust"`
	AngerFear            float64 `json:"angerFear"`
	AnticipationSurprise float64 `json:"anticipationSurprise"`
}

// Neutral returns the all-zero vector.
func Neutral() Vector {
	return Vector{}
}

// TotalEnergy is the sum of absolute axis values, a scalar proxy for
// overall emotional load. Ranges over [0, 4].
func (v Vector) TotalEnergy() float64 {
	return math.Abs(v.JoySadness) +
		math.Abs(v.AcceptanceDisgust) +
		math.Abs(v.AngerFear) +
		math.Abs(v.AnticipationSurprise)
}

// ValueOf returns the nonnegative magnitude of a single emotion: the
// axis value if the emotion sits on the matching pole, else zero.
func (v Vector) ValueOf(e Emotion) float64 {
	info := axes[e]
	return math.Max(0, v.axis(info.axis)*info.dir)
}

func (v Vector) axis(i int) float64 {
	switch i {
	case axisJoySadness:
		return v.JoySadness
	case axisAcceptanceDisgust:
		return v.AcceptanceDisgust
	case axisAngerFear:
		return v.AngerFear
	default:
		return v.AnticipationSurprise
	}
}

func (v *Vector) setAxis(i int, val float64) {
	switch i {
	case axisJoySadness:
		v.JoySadness = val
	case axisAcceptanceDisgust:
		v.AcceptanceDisgust = val
	case axisAngerFear:
		v.AngerFear = val
	default:
		v.AnticipationSurprise = val
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
