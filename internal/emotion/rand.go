package emotion

import "math/rand"

// Source supplies the uniform randomness the activity generator needs.
// Injected so tests can script exact draw sequences; production callers
// use DefaultSource.
type Source interface {
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
}

type defaultSource struct{}

func (defaultSource) Float64() float64 { return rand.Float64() }
func (defaultSource) IntN(n int) int   { return rand.Intn(n) }

// DefaultSource returns a Source backed by math/rand's shared
// generator. Safe for concurrent use.
func DefaultSource() Source {
	return defaultSource{}
}
