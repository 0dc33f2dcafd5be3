package emotion

import "sort"

// Tier is the display intensity of an interpreted mood.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Classification thresholds. The leading emotion must clear LowThreshold
// to register at all; a runner-up joins the label only when it is both
// above LowThreshold and within ProximityRatio of the emotion ahead of
// it.
const (
	HighThreshold   = 0.80
	MediumThreshold = 0.50
	LowThreshold    = 0.20
	ProximityRatio  = 0.75
)

// Labels for the two states that are not a base emotion or dyad.
const (
	LabelNeutral = "neutral"
	LabelMixed   = "mixed"
)

// Interpretation is the human-readable reading of a vector. Emotion is a
// base emotion name, a dyad name, "neutral" or "mixed". Intensity is
// empty for neutral and mixed. Contributing lists the base emotions
// behind the label, strongest first.
type Interpretation struct {
	Emotion      string    `json:"emotion"`
	Intensity    Tier      `json:"intensity,omitempty"`
	Contributing []Emotion `json:"contributingEmotions,omitempty"`
}

// Interpret classifies a vector into a single emotion, a dyad, mixed or
// neutral. Pure function of its input and the static tables; identical
// input always yields identical output.
func Interpret(v Vector) Interpretation {
	type scored struct {
		emotion Emotion
		value   float64
	}

	ranked := make([]scored, 0, len(wheel))
	for _, e := range wheel {
		ranked = append(ranked, scored{e, v.ValueOf(e)})
	}
	// Stable sort keeps wheel order on ties, so classification is
	// deterministic.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].value > ranked[j].value
	})

	first, second, third := ranked[0], ranked[1], ranked[2]

	tier, ok := tierOf(first.value)
	if !ok {
		return Interpretation{Emotion: LabelNeutral}
	}

	if !inProximity(first.value, second.value) {
		return single(first.emotion, tier)
	}

	// Three or more emotions contending: no single label applies.
	if inProximity(second.value, third.value) {
		return Interpretation{Emotion: LabelMixed}
	}

	name, ok := DyadName(first.emotion, second.emotion)
	if !ok {
		// Only opposite pairs lack a name, and those cannot co-elevate.
		// Degrade to the leading emotion rather than fail.
		return single(first.emotion, tier)
	}

	avgTier, _ := tierOf((first.value + second.value) / 2)
	return Interpretation{
		Emotion:      name,
		Intensity:    avgTier,
		Contributing: []Emotion{first.emotion, second.emotion},
	}
}

func single(e Emotion, tier Tier) Interpretation {
	return Interpretation{
		Emotion:      string(e),
		Intensity:    tier,
		Contributing: []Emotion{e},
	}
}

// inProximity reports whether next is close enough behind lead to share
// the label.
func inProximity(lead, next float64) bool {
	return next >= lead*ProximityRatio && next >= LowThreshold
}

func tierOf(value float64) (Tier, bool) {
	switch {
	case value >= HighThreshold:
		return TierHigh, true
	case value >= MediumThreshold:
		return TierMedium, true
	case value >= LowThreshold:
		return TierLow, true
	default:
		return "", false
	}
}
