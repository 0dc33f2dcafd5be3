package emotion

// dyadKey is an unordered emotion pair, normalized to wheel order.
type dyadKey struct {
	a, b Emotion
}

// dyadNames covers every non-opposite pair: eight primary dyads
// (adjacent on the wheel), eight secondary (two hops) and eight tertiary
// (three hops). The four opposite pairs share an axis, can never both be
// elevated, and have no name by construction.
var dyadNames = map[dyadKey]string{
	// primary (distance 1)
	{Joy, Acceptance}:     "love",
	{Acceptance, Fear}:    "submission",
	{Fear, Surprise}:      "awe",
	{Surprise, Sadness}:   "disapproval",
	{Sadness, Disgust}:    "remorse",
	{Disgust, Anger}:      "contempt",
	{Anger, Anticipation}: "aggressiveness",
	{Joy, Anticipation}:   "optimism",

	// secondary (distance 2)
	{Joy, Fear}:                "guilt",
	{Acceptance, Surprise}:     "curiosity",
	{Fear, Sadness}:            "despair",
	{Surprise, Disgust}:        "shock",
	{Sadness, Anger}:           "envy",
	{Disgust, Anticipation}:    "cynicism",
	{Joy, Anger}:               "pride",
	{Acceptance, Anticipation}: "hope",

	// tertiary (distance 3)
	{Joy, Surprise}:         "delight",
	{Acceptance, Sadness}:   "sentimentality",
	{Fear, Disgust}:         "shame",
	{Surprise, Anger}:       "outrage",
	{Sadness, Anticipation}: "pessimism",
	{Joy, Disgust}:          "morbidness",
	{Acceptance, Anger}:     "dominance",
	{Fear, Anticipation}:    "anxiety",
}

// DyadName returns the blend name for two emotions, if the pair has one.
// Order does not matter. Opposite pairs (and unknown emotions) have no
// dyad and return false.
func DyadName(a, b Emotion) (string, bool) {
	if wheelIndex(a) > wheelIndex(b) {
		a, b = b, a
	}
	name, ok := dyadNames[dyadKey{a, b}]
	return name, ok
}
