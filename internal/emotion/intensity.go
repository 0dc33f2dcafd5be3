package emotion

// Intensity is the ordinal strength of a pull.
type Intensity string

const (
	Tiny   Intensity = "tiny"
	Small  Intensity = "small"
	Medium Intensity = "medium"
	Large  Intensity = "large"
	Huge   Intensity = "huge"
)

// intensityMagnitudes are the base pull strengths. A medium+small
// reinforced pull lands roughly on large; tuned so a single medium pull
// on a neutral vector moves its axis to 0.25.
var intensityMagnitudes = map[Intensity]float64{
	Tiny:   0.05,
	Small:  0.15,
	Medium: 0.25,
	Large:  0.40,
	Huge:   0.60,
}

// Intensities returns the five pull intensities in ascending order.
func Intensities() []Intensity {
	return []Intensity{Tiny, Small, Medium, Large, Huge}
}

// Valid reports whether i names a known intensity.
func (i Intensity) Valid() bool {
	_, ok := intensityMagnitudes[i]
	return ok
}

// Magnitude returns the base pull strength in (0, 1). Unknown
// intensities have zero magnitude.
func (i Intensity) Magnitude() float64 {
	return intensityMagnitudes[i]
}
