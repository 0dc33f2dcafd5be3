package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hollowbrook/hamlet/internal/activity"
	"github.com/hollowbrook/hamlet/internal/emotion"
)

var simulateSteps int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run an offline day-in-the-life simulation",
	Long:  "Simulate runs a sequence of random activities against an in-memory NPC and prints each outcome and the interpreted mood. Useful for tuning the engine without a database.",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simulateSteps, "steps", 8, "number of activities to simulate")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	src := emotion.DefaultSource()
	catalog := activity.Catalog()
	vec := emotion.Neutral()

	// Activities land a few game-hours apart, so decay shows between
	// steps.
	const hoursBetween = 3.0

	for step := 1; step <= simulateSteps; step++ {
		act := catalog[src.IntN(len(catalog))]
		tier := activity.RollTier(src, act.Weights)
		pulls := emotion.GeneratePulls(src, act.Profile, tier)

		vec = emotion.ApplyDecay(vec, hoursBetween)
		vec = emotion.ApplyPulls(vec, pulls)
		mood := emotion.Enrich(emotion.Interpret(vec))

		fmt.Fprintf(os.Stderr, "step %d: %s (%s)\n", step, act.Name, tier)
		for _, p := range pulls {
			fmt.Fprintf(os.Stderr, "  pull: %s/%s\n", p.Emotion, p.Intensity)
		}
		fmt.Fprintf(os.Stderr, "  mood: %s", mood.Emotion)
		if mood.Intensity != "" {
			fmt.Fprintf(os.Stderr, " (%s)", mood.Intensity)
		}
		fmt.Fprintf(os.Stderr, ", feeling %s\n", mood.Descriptor.Adjective)
	}

	return nil
}
