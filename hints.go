package main

import "math"

// QuestionKind selects the disclosure medium for a question.
type QuestionKind string

const (
	KindQuote     QuestionKind = "quote"     // scrubbed video clip with a stop timestamp
	KindCharacter QuestionKind = "character" // pixelated character portrait
	KindBanner    QuestionKind = "banner"    // pixelated banner art
)

func (k QuestionKind) usesImage() bool {
	return k == KindCharacter || k == KindBanner
}

const (
	// clarityPerHint is how much each hint unblurs an image question.
	clarityPerHint = 0.15

	// maxScrambleTier is the easiest anagram tier; the hint affordance is
	// inert once a question reaches it.
	maxScrambleTier = 4

	// Wrong-guess streaks that trigger an automatic hint. Quote mode gets
	// more attempts before escalating because a quote leaks less per hint.
	autoEscalateQuote = 5
	autoEscalateImage = 3
)

// DisclosureMode says how much of the answer the client may currently see.
type DisclosureMode int

const (
	// DisclosureMedia: the raw medium only (video clip, or image at the
	// calibrated clarity floor for hint 0).
	DisclosureMedia DisclosureMode = iota

	// DisclosureImage: pixelated render at Disclosure.Clarity.
	DisclosureImage

	// DisclosureFull: full image shown, but the question is not solved;
	// the player still has to guess.
	DisclosureFull

	// DisclosurePuzzle: letter-scramble puzzle at Disclosure.Tier.
	DisclosurePuzzle
)

// Disclosure is the concrete disclosure parameter derived from a question's
// calibration and a play's hint count.
type Disclosure struct {
	Mode    DisclosureMode
	Clarity float64 // meaningful for DisclosureImage
	Tier    int     // meaningful for DisclosurePuzzle
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clarityForHints converts a hint count into an image clarity level.
// At zero hints the clarity equals the calibrated floor, never zero:
// a fully opaque image is not a fair starting state.
func clarityForHints(baseClarity float64, hintsUsed int) float64 {
	return clamp01(baseClarity + float64(hintsUsed)*clarityPerHint)
}

// hintsToFullReveal is the smallest hint count at which an image question
// reaches the full-reveal threshold.
func hintsToFullReveal(baseClarity float64) int {
	if baseClarity >= fullRevealClarity {
		return 0
	}
	return int(math.Ceil((fullRevealClarity - baseClarity) / clarityPerHint))
}

// hintCeiling is the hint count beyond which requestHint becomes a no-op.
//
// Quote questions go straight to the puzzle: tiers 1 through 4, so the
// ceiling is 4. Image questions first climb the clarity ladder, spend one
// hint on the full reveal, then climb puzzle tiers 1 through 4.
func hintCeiling(kind QuestionKind, baseClarity float64) int {
	if kind == KindQuote {
		return maxScrambleTier
	}
	return hintsToFullReveal(baseClarity) + maxScrambleTier
}

// disclosureFor maps (kind, calibration, hints) to the disclosure the
// client is entitled to. Pure; the same inputs always produce the same
// disclosure, which is what keeps client preview and server truth aligned.
func disclosureFor(kind QuestionKind, baseClarity float64, hintsUsed int) Disclosure {
	if kind == KindQuote {
		if hintsUsed == 0 {
			return Disclosure{Mode: DisclosureMedia}
		}
		tier := hintsUsed
		if tier > maxScrambleTier {
			tier = maxScrambleTier
		}
		return Disclosure{Mode: DisclosurePuzzle, Tier: tier}
	}

	reveal := hintsToFullReveal(baseClarity)
	switch {
	case hintsUsed == 0:
		return Disclosure{Mode: DisclosureMedia, Clarity: clamp01(baseClarity)}
	case hintsUsed < reveal:
		return Disclosure{Mode: DisclosureImage, Clarity: clarityForHints(baseClarity, hintsUsed)}
	case hintsUsed == reveal:
		return Disclosure{Mode: DisclosureFull, Clarity: 1}
	default:
		tier := hintsUsed - reveal
		if tier > maxScrambleTier {
			tier = maxScrambleTier
		}
		return Disclosure{Mode: DisclosurePuzzle, Clarity: 1, Tier: tier}
	}
}

// autoEscalateAfter is the consecutive-wrong-guess count that advances the
// hint level without a manual request.
func autoEscalateAfter(kind QuestionKind) int {
	if kind == KindQuote {
		return autoEscalateQuote
	}
	return autoEscalateImage
}
