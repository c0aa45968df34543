package main

import (
	"math"
	"testing"
)

func TestClarityForHints(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		hints int
		want  float64
	}{
		{"floor at zero hints", 0.02, 0, 0.02},
		{"one step", 0.02, 1, 0.17},
		{"four steps", 0.02, 4, 0.62},
		{"six steps", 0.02, 6, 0.92},
		{"clamped at one", 0.02, 7, 1.0},
		{"high floor clamps early", 0.9, 2, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clarityForHints(tt.base, tt.hints)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("clarityForHints(%v, %d) = %v, want %v", tt.base, tt.hints, got, tt.want)
			}
		})
	}
}

func TestHintsToFullReveal(t *testing.T) {
	tests := []struct {
		base float64
		want int
	}{
		{0.02, 7},
		{0.05, 6},
		{0.5, 3},
		{0.8, 1},
		{0.95, 0},
	}
	for _, tt := range tests {
		if got := hintsToFullReveal(tt.base); got != tt.want {
			t.Errorf("hintsToFullReveal(%v) = %d, want %d", tt.base, got, tt.want)
		}
	}
}

func TestHintCeiling(t *testing.T) {
	if got := hintCeiling(KindQuote, 0); got != 4 {
		t.Errorf("quote ceiling = %d, want 4", got)
	}
	if got := hintCeiling(KindCharacter, 0.02); got != 11 {
		t.Errorf("character ceiling at base 0.02 = %d, want 11", got)
	}
	if got := hintCeiling(KindBanner, 0.5); got != 7 {
		t.Errorf("banner ceiling at base 0.5 = %d, want 7", got)
	}
}

func TestDisclosureLadderImage(t *testing.T) {
	// Base 0.02 takes 7 hints to reach full reveal, then four puzzle tiers.
	const base = 0.02

	tests := []struct {
		name  string
		hints int
		mode  DisclosureMode
		tier  int
	}{
		{"untouched", 0, DisclosureMedia, 0},
		{"first unblur", 1, DisclosureImage, 0},
		{"last unblur", 6, DisclosureImage, 0},
		{"full reveal not solved", 7, DisclosureFull, 0},
		{"puzzle opens", 8, DisclosurePuzzle, 1},
		{"puzzle middle", 10, DisclosurePuzzle, 3},
		{"puzzle ceiling", 11, DisclosurePuzzle, 4},
		{"tier clamps past ceiling", 15, DisclosurePuzzle, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := disclosureFor(KindCharacter, base, tt.hints)
			if d.Mode != tt.mode {
				t.Errorf("mode = %v, want %v", d.Mode, tt.mode)
			}
			if d.Tier != tt.tier {
				t.Errorf("tier = %d, want %d", d.Tier, tt.tier)
			}
			if tt.mode == DisclosureImage && (d.Clarity <= base || d.Clarity >= fullRevealClarity) {
				t.Errorf("clarity = %v, want inside (%v, %v)", d.Clarity, base, fullRevealClarity)
			}
		})
	}
}

func TestDisclosureLadderQuote(t *testing.T) {
	tests := []struct {
		name  string
		hints int
		mode  DisclosureMode
		tier  int
	}{
		{"clip only", 0, DisclosureMedia, 0},
		{"puzzle opens", 1, DisclosurePuzzle, 1},
		{"ceiling", 4, DisclosurePuzzle, 4},
		{"tier clamps past ceiling", 9, DisclosurePuzzle, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := disclosureFor(KindQuote, 0, tt.hints)
			if d.Mode != tt.mode || d.Tier != tt.tier {
				t.Errorf("disclosureFor(quote, 0, %d) = {%v %v %d}, want mode %v tier %d",
					tt.hints, d.Mode, d.Clarity, d.Tier, tt.mode, tt.tier)
			}
		})
	}
}

func TestAutoEscalateAfter(t *testing.T) {
	if got := autoEscalateAfter(KindQuote); got != 5 {
		t.Errorf("quote escalation threshold = %d, want 5", got)
	}
	if got := autoEscalateAfter(KindCharacter); got != 3 {
		t.Errorf("character escalation threshold = %d, want 3", got)
	}
	if got := autoEscalateAfter(KindBanner); got != 3 {
		t.Errorf("banner escalation threshold = %d, want 3", got)
	}
}
