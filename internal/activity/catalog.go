// Package activity wires the emotion engine into the game loop: a small
// catalog of things NPCs can do, an outcome roll, and the canonical
// decay → pull → persist → interpret cycle.
package activity

import (
	"github.com/hollowbrook/hamlet/internal/emotion"
)

// TierWeights are the relative odds of each outcome tier for an
// activity. They need not sum to 1; the roll normalizes.
type TierWeights struct {
	Best         float64
	Okay         float64
	Mixed        float64
	Catastrophic float64
}

// Activity is one catalog entry. Profile drives which emotions an
// outcome pulls toward.
type Activity struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Profile emotion.Profile `json:"profile"`
	Weights TierWeights     `json:"-"`
}

// catalog is the built-in activity set. Static and read-only.
var catalog = []Activity{
	{
		ID:      "share_meal",
		Name:    "Share a meal",
		Profile: emotion.Profile{SuccessEmotion: emotion.Joy, FailureEmotion: emotion.Disgust},
		Weights: TierWeights{Best: 4, Okay: 4, Mixed: 1, Catastrophic: 1},
	},
	{
		ID:      "spar",
		Name:    "Sparring match",
		Profile: emotion.Profile{SuccessEmotion: emotion.Anger, FailureEmotion: emotion.Fear},
		Weights: TierWeights{Best: 3, Okay: 3, Mixed: 2, Catastrophic: 2},
	},
	{
		ID:      "gossip",
		Name:    "Trade gossip",
		Profile: emotion.Profile{SuccessEmotion: emotion.Acceptance, FailureEmotion: emotion.Disgust},
		Weights: TierWeights{Best: 3, Okay: 5, Mixed: 1, Catastrophic: 1},
	},
	{
		ID:      "forage",
		Name:    "Forage the woods",
		Profile: emotion.Profile{SuccessEmotion: emotion.Anticipation, FailureEmotion: emotion.Sadness},
		Weights: TierWeights{Best: 3, Okay: 4, Mixed: 2, Catastrophic: 1},
	},
	{
		ID:      "stargaze",
		Name:    "Stargaze",
		Profile: emotion.Profile{SuccessEmotion: emotion.Joy, FailureEmotion: emotion.Sadness},
		Weights: TierWeights{Best: 5, Okay: 3, Mixed: 1, Catastrophic: 1},
	},
}

// Catalog returns every known activity.
func Catalog() []Activity {
	return catalog
}

// Lookup finds a catalog activity by id.
func Lookup(id string) (Activity, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// RollTier picks an outcome tier by weighted draw.
func RollTier(src emotion.Source, w TierWeights) emotion.OutcomeTier {
	total := w.Best + w.Okay + w.Mixed + w.Catastrophic
	if total <= 0 {
		return emotion.TierOkay
	}

	roll := src.Float64() * total
	switch {
	case roll < w.Best:
		return emotion.TierBest
	case roll < w.Best+w.Okay:
		return emotion.TierOkay
	case roll < w.Best+w.Okay+w.Mixed:
		return emotion.TierMixed
	default:
		return emotion.TierCatastrophic
	}
}
