package emotion

import "math"

// decayBands are the four quartile bands an axis value walks down
// through as it fades. Each band has its own linear rate per hour, so a
// full-strength emotion takes 32h to leave the top band but the last
// quarter burns off in 4h. Stronger emotions fade slower in absolute
// terms, yet everything trends to zero.
var decayBands = []struct {
	floor float64 // band lower bound (abs value)
	rate  float64 // decay per hour inside the band
}{
	{0.75, 0.0078125},
	{0.50, 0.015625},
	{0.25, 0.03125},
	{0.00, 0.0625},
}

// decayEpsilon snaps near-zero residue to exactly zero.
const decayEpsilon = 0.001

// ApplyDecay ages a vector toward neutral given elapsed hours. The input
// is not modified; non-positive hours returns it unchanged.
func ApplyDecay(v Vector, hours float64) Vector {
	if hours <= 0 {
		return v
	}
	return Vector{
		JoySadness:           decayComponent(v.JoySadness, hours),
		AcceptanceDisgust:    decayComponent(v.AcceptanceDisgust, hours),
		AngerFear:            decayComponent(v.AngerFear, hours),
		AnticipationSurprise: decayComponent(v.AnticipationSurprise, hours),
	}
}

// decayComponent walks one axis value down through the quartile bands,
// consuming elapsed hours band by band. Sign is preserved and the value
// never overshoots past zero.
func decayComponent(value, hours float64) float64 {
	if hours <= 0 || value == 0 {
		return value
	}

	sign := 1.0
	if value < 0 {
		sign = -1
	}
	abs := math.Abs(value)

	remaining := hours
	for _, band := range decayBands {
		if abs <= band.floor {
			continue
		}
		toFloor := (abs - band.floor) / band.rate
		if remaining < toFloor {
			abs -= band.rate * remaining
			break
		}
		abs = band.floor
		remaining -= toFloor
	}

	if abs < decayEpsilon {
		return 0
	}
	return sign * abs
}
