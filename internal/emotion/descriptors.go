package emotion

// Descriptor is display copy for an interpreted mood: a noun ("grief"),
// an adjective ("grieving") and a UI accent color. Lookup is static; the
// engine dictates nothing about how callers render these.
type Descriptor struct {
	Noun      string `json:"noun"`
	Adjective string `json:"adjective"`
	Color     string `json:"color"`
}

// baseDescriptors name each base emotion per tier, following the
// intensity gradations of the wheel (serenity → joy → ecstasy).
var baseDescriptors = map[Emotion]map[Tier]Descriptor{
	Joy: {
		TierLow:    {"serenity", "serene", "#f5d76e"},
		TierMedium: {"joy", "joyful", "#f7ca18"},
		TierHigh:   {"ecstasy", "ecstatic", "#f4b350"},
	},
	Acceptance: {
		TierLow:    {"acceptance", "accepting", "#a9d171"},
		TierMedium: {"trust", "trusting", "#87b87a"},
		TierHigh:   {"admiration", "admiring", "#5b8930"},
	},
	Fear: {
		TierLow:    {"apprehension", "apprehensive", "#9fd8ad"},
		TierMedium: {"fear", "fearful", "#4daf7c"},
		TierHigh:   {"terror", "terrified", "#1e824c"},
	},
	Surprise: {
		TierLow:    {"distraction", "distracted", "#89c4f4"},
		TierMedium: {"surprise", "surprised", "#59abe3"},
		TierHigh:   {"amazement", "amazed", "#2574a9"},
	},
	Sadness: {
		TierLow:    {"pensiveness", "pensive", "#8e9ad6"},
		TierMedium: {"sadness", "sad", "#6c7ec2"},
		TierHigh:   {"grief", "grieving", "#3a539b"},
	},
	Disgust: {
		TierLow:    {"boredom", "bored", "#be90d4"},
		TierMedium: {"disgust", "disgusted", "#9b59b6"},
		TierHigh:   {"loathing", "loathing", "#663399"},
	},
	Anger: {
		TierLow:    {"annoyance", "annoyed", "#f1828d"},
		TierMedium: {"anger", "angry", "#e74c3c"},
		TierHigh:   {"rage", "furious", "#cf000f"},
	},
	Anticipation: {
		TierLow:    {"interest", "interested", "#f9bf8f"},
		TierMedium: {"anticipation", "expectant", "#f2784b"},
		TierHigh:   {"vigilance", "vigilant", "#d35400"},
	},
}

// dyadDescriptors cover the 24 named blends. The dyad name is the noun;
// the adjective and color are fixed across tiers.
var dyadDescriptors = map[string]Descriptor{
	"love":           {"love", "loving", "#e08d5c"},
	"submission":     {"submission", "submissive", "#7fb069"},
	"awe":            {"awe", "awestruck", "#3fa7a0"},
	"disapproval":    {"disapproval", "disapproving", "#6a89cc"},
	"remorse":        {"remorse", "remorseful", "#6b5b95"},
	"contempt":       {"contempt", "contemptuous", "#ac3b61"},
	"aggressiveness": {"aggressiveness", "aggressive", "#e0592a"},
	"optimism":       {"optimism", "optimistic", "#f5ab35"},
	"guilt":          {"guilt", "guilty", "#a2b86c"},
	"curiosity":      {"curiosity", "curious", "#68c3a3"},
	"despair":        {"despair", "despairing", "#4b6584"},
	"shock":          {"shock", "shocked", "#7d6b9e"},
	"envy":           {"envy", "envious", "#8e5ea2"},
	"cynicism":       {"cynicism", "cynical", "#b3663c"},
	"pride":          {"pride", "proud", "#ee8244"},
	"hope":           {"hope", "hopeful", "#c2b24b"},
	"delight":        {"delight", "delighted", "#ffb148"},
	"sentimentality": {"sentimentality", "sentimental", "#94a7d4"},
	"shame":          {"shame", "ashamed", "#5e9e7e"},
	"outrage":        {"outrage", "outraged", "#c44569"},
	"pessimism":      {"pessimism", "pessimistic", "#8c7ea3"},
	"morbidness":     {"morbidness", "morbid", "#ad7fa8"},
	"dominance":      {"dominance", "dominant", "#a0522d"},
	"anxiety":        {"anxiety", "anxious", "#e8a85c"},
}

var (
	neutralDescriptor = Descriptor{"calm", "calm", "#95a5a6"}
	mixedDescriptor   = Descriptor{"turmoil", "conflicted", "#7f8c8d"}
)

// Describe looks up display copy for an interpretation. The bool is
// false only for labels outside the static tables.
func Describe(in Interpretation) (Descriptor, bool) {
	switch in.Emotion {
	case LabelNeutral:
		return neutralDescriptor, true
	case LabelMixed:
		return mixedDescriptor, true
	}
	if tiers, ok := baseDescriptors[Emotion(in.Emotion)]; ok {
		d, ok := tiers[in.Intensity]
		return d, ok
	}
	d, ok := dyadDescriptors[in.Emotion]
	return d, ok
}

// Described is an interpretation enriched with its descriptor, for
// consumers that want one payload instead of a separate lookup.
type Described struct {
	Interpretation
	Descriptor Descriptor `json:"descriptor"`
}

// Enrich decorates an interpretation with its descriptor. Labels without
// an entry fall back to the neutral descriptor rather than fail.
func Enrich(in Interpretation) Described {
	d, ok := Describe(in)
	if !ok {
		d = neutralDescriptor
	}
	return Described{Interpretation: in, Descriptor: d}
}
