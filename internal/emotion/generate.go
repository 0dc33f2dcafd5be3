package emotion

// OutcomeTier grades how an activity went.
type OutcomeTier string

const (
	TierBest         OutcomeTier = "best"
	TierOkay         OutcomeTier = "okay"
	TierMixed        OutcomeTier = "mixed"
	TierCatastrophic OutcomeTier = "catastrophic"
)

// OutcomeTiers returns the four tiers from best to worst.
func OutcomeTiers() []OutcomeTier {
	return []OutcomeTier{TierBest, TierOkay, TierMixed, TierCatastrophic}
}

// Valid reports whether t names a known outcome tier.
func (t OutcomeTier) Valid() bool {
	switch t {
	case TierBest, TierOkay, TierMixed, TierCatastrophic:
		return true
	}
	return false
}

// Profile pairs the emotions an activity evokes on success and failure.
type Profile struct {
	SuccessEmotion Emotion `json:"successEmotion"`
	FailureEmotion Emotion `json:"failureEmotion"`
}

// Valid is the structural guard: both emotions present and known.
func (p Profile) Valid() bool {
	return p.SuccessEmotion.Valid() && p.FailureEmotion.Valid()
}

// Per-tier tuning for the generator.
var tierTuning = map[OutcomeTier]struct {
	primaryIntensity Intensity
	secondaryChance  float64
}{
	TierBest:         {Medium, 0.7},
	TierOkay:         {Small, 0.5},
	TierMixed:        {Small, 0.5},
	TierCatastrophic: {Medium, 0.7},
}

// GeneratePulls derives one or two pulls from an activity outcome.
//
// The primary pull follows the profile: success emotion on best/okay,
// failure emotion on catastrophic. A mixed outcome is wild and draws its
// primary uniformly from all eight emotions, deliberately decoupled from
// the profile. The optional secondary pull is drawn from the wheel minus
// the primary's opposite, so it can never cancel the primary outright;
// drawing the primary itself is allowed and reinforces it to roughly one
// intensity step up.
//
// Draw order against src is fixed: mixed primary (IntN 8), secondary
// chance (Float64), secondary emotion (IntN 7), then okay secondary
// intensity (IntN 2).
func GeneratePulls(src Source, p Profile, tier OutcomeTier) []Pull {
	tuning := tierTuning[tier]

	var primary Emotion
	switch tier {
	case TierBest, TierOkay:
		primary = p.SuccessEmotion
	case TierCatastrophic:
		primary = p.FailureEmotion
	default:
		primary = wheel[src.IntN(len(wheel))]
	}

	pulls := []Pull{{Emotion: primary, Intensity: tuning.primaryIntensity}}

	if src.Float64() >= tuning.secondaryChance {
		return pulls
	}

	opposite := primary.Opposite()
	candidates := make([]Emotion, 0, len(wheel)-1)
	for _, e := range wheel {
		if e != opposite {
			candidates = append(candidates, e)
		}
	}
	secondary := candidates[src.IntN(len(candidates))]

	intensity := Small
	if tier == TierOkay && src.IntN(2) == 1 {
		intensity = Medium
	}

	return append(pulls, Pull{Emotion: secondary, Intensity: intensity})
}
