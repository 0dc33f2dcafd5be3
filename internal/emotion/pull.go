package emotion

import "math"

// Pull is a directional nudge: push the vector toward one emotion with a
// given strength.
type Pull struct {
	Emotion   Emotion   `json:"emotion"`
	Intensity Intensity `json:"intensity"`
}

const (
	// energyResistanceKnee is the total energy above which further pulls
	// are dampened exponentially.
	energyResistanceKnee = 0.8

	// suppressionFactor scales how hard a pull suppresses unrelated
	// elevated emotions.
	suppressionFactor = 1.8
)

// ApplyPulls applies pulls in order and returns the resulting vector.
// The input is not modified. Convention is one or two pulls per call,
// but any count is accepted; zero pulls returns the input unchanged.
//
// Energy resistance is snapshotted from the input vector once for the
// whole call, so simultaneous pulls are not penalized relative to each
// other. Two pulls in one call therefore form a dyad more effectively
// than the same two pulls applied in sequence. That asymmetry is
// intentional.
func ApplyPulls(v Vector, pulls []Pull) Vector {
	energyResistance := 1.0
	if energy := v.TotalEnergy(); energy >= energyResistanceKnee {
		energyResistance = math.Exp(-energy / 2)
	}

	out := v
	for _, p := range pulls {
		info := axes[p.Emotion]
		cur := out.axis(info.axis)

		// Extreme axis values resist movement in either direction.
		axisResistance := 1 - cur*cur
		delta := p.Intensity.Magnitude() * info.dir * axisResistance * energyResistance
		out.setAxis(info.axis, clamp(cur+delta, -1, 1))
	}

	return suppress(out, pulls)
}

// suppress reduces every elevated emotion that is not being actively
// pulled, scaled by wheel distance from each pull. Suppression only
// moves values toward zero; it may flatten an emotion but never creates
// its opposite.
func suppress(v Vector, pulls []Pull) Vector {
	pulled := make(map[Emotion]bool, len(pulls))
	for _, p := range pulls {
		pulled[p.Emotion] = true
	}

	out := v
	for _, p := range pulls {
		mag := p.Intensity.Magnitude()
		for _, target := range wheel {
			if pulled[target] {
				continue
			}
			val := out.ValueOf(target)
			if val <= 0 {
				continue
			}

			distance := Distance(p.Emotion, target)
			pct := math.Min(1, float64(distance)/5*mag*suppressionFactor)

			info := axes[target]
			next := out.axis(info.axis) - info.dir*val*pct
			// Toward zero only: never cross into the opposite pole.
			if info.dir > 0 && next < 0 {
				next = 0
			}
			if info.dir < 0 && next > 0 {
				next = 0
			}
			out.setAxis(info.axis, next)
		}
	}
	return out
}
