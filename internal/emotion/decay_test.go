package emotion

import (
	"math"
	"testing"
)

func TestDecayBandFixtures(t *testing.T) {
	// Each fixture decays exactly one band's worth of hours and should
	// land on the band floor.
	cases := []struct {
		value, hours, want float64
	}{
		{0.25, 4, 0},
		{0.5, 8, 0.25},
		{0.75, 16, 0.5},
		{1.0, 32, 0.75},
	}
	for _, c := range cases {
		got := decayComponent(c.value, c.hours)
		if math.Abs(got-c.want) > 0.02 {
			t.Errorf("decayComponent(%f, %f) = %f, want ~%f", c.value, c.hours, got, c.want)
		}
	}
}

func TestDecayCrossesBands(t *testing.T) {
	// Full strength to zero: 32 + 16 + 8 + 4 hours.
	if got := decayComponent(1.0, 60); got != 0 {
		t.Errorf("decayComponent(1.0, 60) = %f, want 0", got)
	}
	// Partway into the second band: 32h to reach 0.75, then 4h at the
	// second band's rate.
	got := decayComponent(1.0, 36)
	want := 0.75 - 4*0.015625
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("decayComponent(1.0, 36) = %f, want %f", got, want)
	}
}

func TestDecayMonotonic(t *testing.T) {
	for _, v := range []float64{0.05, 0.25, 0.5, 0.9, 1.0} {
		prev := v
		for h := 0.5; h <= 64; h += 0.5 {
			got := decayComponent(v, h)
			if got > prev+1e-12 {
				t.Fatalf("decayComponent(%f, %f) = %f increased from %f", v, h, got, prev)
			}
			if got < 0 {
				t.Fatalf("decayComponent(%f, %f) = %f overshot zero", v, h, got)
			}
			prev = got
		}
	}
}

func TestDecaySymmetry(t *testing.T) {
	for _, v := range []float64{0.1, 0.3, 0.6, 0.8, 1.0} {
		for _, h := range []float64{1, 4, 12, 30, 100} {
			pos := decayComponent(v, h)
			neg := decayComponent(-v, h)
			if neg != -pos {
				t.Errorf("decayComponent(%f, %f) = %f, want %f", -v, h, neg, -pos)
			}
		}
	}
}

func TestDecaySnapsToZero(t *testing.T) {
	// A tiny residue below the epsilon clamps to exactly zero.
	if got := decayComponent(0.002, 1); got != 0 {
		t.Errorf("decayComponent(0.002, 1) = %f, want 0", got)
	}
}

func TestApplyDecayNonPositiveHours(t *testing.T) {
	v := Vector{JoySadness: 0.5, AngerFear: -0.3}
	if got := ApplyDecay(v, 0); got != v {
		t.Errorf("ApplyDecay(v, 0) = %+v, want input unchanged", got)
	}
	if got := ApplyDecay(v, -2); got != v {
		t.Errorf("ApplyDecay(v, -2) = %+v, want input unchanged", got)
	}
}

func TestApplyDecayAllAxes(t *testing.T) {
	v := Vector{
		JoySadness:           0.5,
		AcceptanceDisgust:    -0.5,
		AngerFear:            0.25,
		AnticipationSurprise: -0.25,
	}
	got := ApplyDecay(v, 4)

	wantHalf := 0.5 - 4*0.03125
	if math.Abs(got.JoySadness-wantHalf) > 1e-9 {
		t.Errorf("JoySadness = %f, want %f", got.JoySadness, wantHalf)
	}
	if math.Abs(got.AcceptanceDisgust+wantHalf) > 1e-9 {
		t.Errorf("AcceptanceDisgust = %f, want %f", got.AcceptanceDisgust, -wantHalf)
	}
	if got.AngerFear != 0 {
		t.Errorf("AngerFear = %f, want 0", got.AngerFear)
	}
	if got.AnticipationSurprise != 0 {
		t.Errorf("AnticipationSurprise = %f, want 0", got.AnticipationSurprise)
	}
}
