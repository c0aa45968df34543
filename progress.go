package main

import (
	"strings"
	"time"
)

// normalizeAnswer lowercases and strips every character that is not an
// ASCII letter or digit. Spaces, punctuation, and diacritics-as-typed are
// all discarded: matching is deliberately forgiving.
func normalizeAnswer(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PlayProgress tracks one question-play. Solved is terminal: no operation
// transitions back out of it. Attempts and HintsUsed only ever grow.
type PlayProgress struct {
	Solved    bool `json:"solved"`
	Skipped   bool `json:"skipped"`
	Attempts  int  `json:"attempts"`
	HintsUsed int  `json:"hints_used"`

	wrongStreak int
}

// Play is the ephemeral state for one question served to one session. It
// copies what it needs out of the question record; the record itself is
// never mutated by gameplay.
type Play struct {
	QuestionID  uint
	Kind        QuestionKind
	Answer      string // canonical answer, as authored
	BaseClarity float64
	Progress    PlayProgress
	StartedAt   time.Time
}

func NewPlay(id uint, kind QuestionKind, answer string, baseClarity float64) *Play {
	return &Play{
		QuestionID:  id,
		Kind:        kind,
		Answer:      answer,
		BaseClarity: baseClarity,
		StartedAt:   time.Now(),
	}
}

// Disclosure resolves the current disclosure parameter from the play's
// hint count and the question's calibration.
func (p *Play) Disclosure() Disclosure {
	return disclosureFor(p.Kind, p.BaseClarity, p.Progress.HintsUsed)
}

// AtHintCeiling reports whether further hints can change anything.
func (p *Play) AtHintCeiling() bool {
	return p.Progress.HintsUsed >= hintCeiling(p.Kind, p.BaseClarity)
}

// RequestHint advances the hint level. It is a no-op once solved or at the
// ceiling, and reports whether anything changed.
func (p *Play) RequestHint() bool {
	if p.Progress.Solved || p.AtHintCeiling() {
		return false
	}
	p.Progress.HintsUsed++
	p.Progress.wrongStreak = 0
	return true
}

// GuessResult is the outcome of one submitted guess.
type GuessResult struct {
	Correct   bool   `json:"correct"`
	Answer    string `json:"answer,omitempty"` // canonical answer, set when correct
	Escalated bool   `json:"escalated"`        // a wrong-guess streak triggered an automatic hint
}

// SubmitGuess verifies a guess against the canonical answer. Every real
// guess increments Attempts, right or wrong. A run of wrong guesses with no
// intervening hint advances the hint level automatically, without the score
// penalty a manual request carries.
//
// Empty or whitespace-only input is rejected upstream; if one slips
// through, it neither counts as an attempt nor changes state.
func (p *Play) SubmitGuess(raw string) GuessResult {
	if p.Progress.Solved {
		return GuessResult{Correct: true, Answer: p.Answer}
	}
	if strings.TrimSpace(raw) == "" {
		return GuessResult{}
	}

	p.Progress.Attempts++

	if normalizeAnswer(raw) == normalizeAnswer(p.Answer) {
		p.Progress.Solved = true
		p.Progress.wrongStreak = 0
		return GuessResult{Correct: true, Answer: p.Answer}
	}

	p.Progress.wrongStreak++

	escalated := false
	if p.Progress.wrongStreak >= autoEscalateAfter(p.Kind) && !p.AtHintCeiling() {
		p.Progress.HintsUsed++
		p.Progress.wrongStreak = 0
		escalated = true
	}

	return GuessResult{Escalated: escalated}
}

// Skip forces the terminal display-solved state without a correct guess,
// so the canonical answer can be shown. A skip is recorded separately from
// a genuine solve and never earns points. Reports whether state changed.
func (p *Play) Skip() bool {
	if p.Progress.Solved {
		return false
	}
	p.Progress.Solved = true
	p.Progress.Skipped = true
	return true
}

// TimeTaken is the whole-second duration since the question was served.
func (p *Play) TimeTaken() int {
	return int(time.Since(p.StartedAt).Round(time.Second) / time.Second)
}
