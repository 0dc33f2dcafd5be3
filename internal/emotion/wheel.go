// Package emotion implements hamlet's emotion simulation engine: a
// four-axis bipolar emotion model with nonlinear pull application,
// piecewise decay toward neutrality, and a classifier that turns a raw
// vector into a readable mood label.
//
// Every function in this package is pure. Callers own persistence and
// serialization of the vectors the engine returns.
package emotion

// Emotion is one of the eight atomic emotions on the wheel.
type Emotion string

const (
	Joy          Emotion = "joy"
	Acceptance   Emotion = "acceptance"
	Fear         Emotion = "fear"
	Surprise     Emotion = "surprise"
	Sadness      Emotion = "sadness"
	Disgust      Emotion = "disgust"
	Anger        Emotion = "anger"
	Anticipation Emotion = "anticipation"
)

// wheel is the fixed circular ordering of the eight emotions.
// Opposites sit four hops apart and share an axis.
var wheel = []Emotion{
	Joy, Acceptance, Fear, Surprise, Sadness, Disgust, Anger, Anticipation,
}

// axisInfo maps an emotion onto its axis index and pole direction.
type axisInfo struct {
	axis int
	dir  float64
}

var axes = map[Emotion]axisInfo{
	Joy:          {axisJoySadness, +1},
	Sadness:      {axisJoySadness, -1},
	Acceptance:   {axisAcceptanceDisgust, +1},
	Disgust:      {axisAcceptanceDisgust, -1},
	Anger:        {axisAngerFear, +1},
	Fear:         {axisAngerFear, -1},
	Anticipation: {axisAnticipationSurprise, +1},
	Surprise:     {axisAnticipationSurprise, -1},
}

// All returns the eight emotions in wheel order. The returned slice is
// shared; callers must not modify it.
func All() []Emotion {
	return wheel
}

// Valid reports whether e names one of the eight emotions.
func (e Emotion) Valid() bool {
	_, ok := axes[e]
	return ok
}

// Opposite returns the emotion four hops away on the wheel (the other
// pole of the same axis).
func (e Emotion) Opposite() Emotion {
	return wheel[(wheelIndex(e)+4)%8]
}

// Distance returns the shortest hop count (0-4) between two emotions
// along the wheel.
func Distance(a, b Emotion) int {
	d := wheelIndex(a) - wheelIndex(b)
	if d < 0 {
		d = -d
	}
	if d > 4 {
		d = 8 - d
	}
	return d
}

func wheelIndex(e Emotion) int {
	for i, w := range wheel {
		if w == e {
			return i
		}
	}
	return 0
}
