package main

import "testing"

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "saymyname", "saymyname"},
		{"case and spaces", "Say My Name", "saymyname"},
		{"punctuation stripped", "Say my name!", "saymyname"},
		{"digits kept", "Portal 2", "portal2"},
		{"unicode stripped", "Café", "caf"},
		{"nothing left", "?!  ...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeAnswer(tt.in); got != tt.want {
				t.Errorf("normalizeAnswer(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSubmitGuessMatching(t *testing.T) {
	tests := []struct {
		name  string
		guess string
		want  bool
	}{
		{"exact", "Say my name", true},
		{"case insensitive", "say my name", true},
		{"spacing ignored", "saymyname", true},
		{"punctuation ignored", "Say My Name!", true},
		{"wrong answer", "Heisenberg", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlay(1, KindQuote, "Say my name", 0)
			res := p.SubmitGuess(tt.guess)
			if res.Correct != tt.want {
				t.Errorf("SubmitGuess(%q).Correct = %v, want %v", tt.guess, res.Correct, tt.want)
			}
			if tt.want && res.Answer != "Say my name" {
				t.Errorf("solved result carries answer %q, want the canonical form", res.Answer)
			}
			if p.Progress.Attempts != 1 {
				t.Errorf("attempts = %d, want 1", p.Progress.Attempts)
			}
		})
	}
}

func TestSubmitGuessEmptyIsNotAnAttempt(t *testing.T) {
	p := NewPlay(1, KindQuote, "Say my name", 0)

	for _, raw := range []string{"", "   ", "\t\n"} {
		res := p.SubmitGuess(raw)
		if res.Correct || res.Escalated {
			t.Errorf("SubmitGuess(%q) = %+v, want the zero result", raw, res)
		}
	}
	if p.Progress.Attempts != 0 {
		t.Errorf("attempts = %d after blank guesses, want 0", p.Progress.Attempts)
	}
}

func TestSolvedIsTerminal(t *testing.T) {
	p := NewPlay(1, KindQuote, "Say my name", 0)
	if res := p.SubmitGuess("say my name"); !res.Correct {
		t.Fatal("correct guess not accepted")
	}

	// Further guesses, hints, and skips leave the solved play untouched.
	if res := p.SubmitGuess("wrong"); !res.Correct {
		t.Error("post-solve guess did not report the solved state")
	}
	if p.Progress.Attempts != 1 {
		t.Errorf("attempts = %d after post-solve guess, want 1", p.Progress.Attempts)
	}
	if p.RequestHint() {
		t.Error("RequestHint advanced a solved play")
	}
	if p.Skip() {
		t.Error("Skip changed a solved play")
	}
	if p.Progress.Skipped {
		t.Error("solved play marked skipped")
	}
}

func TestSkipIsDistinctFromSolve(t *testing.T) {
	p := NewPlay(1, KindCharacter, "Batman", 0.1)

	if !p.Skip() {
		t.Fatal("Skip reported no change on a fresh play")
	}
	if !p.Progress.Solved || !p.Progress.Skipped {
		t.Errorf("after skip: solved=%v skipped=%v, want both true",
			p.Progress.Solved, p.Progress.Skipped)
	}
	if p.Skip() {
		t.Error("second Skip reported a change")
	}
}

func TestRequestHintCeiling(t *testing.T) {
	p := NewPlay(1, KindQuote, "Say my name", 0)

	granted := 0
	for p.RequestHint() {
		granted++
		if granted > 20 {
			t.Fatal("RequestHint never hit the ceiling")
		}
	}
	if granted != 4 {
		t.Errorf("quote play granted %d hints, want 4", granted)
	}
	if !p.AtHintCeiling() {
		t.Error("AtHintCeiling() = false after exhausting hints")
	}
	if p.RequestHint() {
		t.Error("RequestHint granted a hint past the ceiling")
	}
	if p.Progress.HintsUsed != 4 {
		t.Errorf("hints used = %d, want 4", p.Progress.HintsUsed)
	}
}

func TestRequestHintImageCeiling(t *testing.T) {
	p := NewPlay(1, KindCharacter, "Batman", 0.02)

	granted := 0
	for p.RequestHint() {
		granted++
		if granted > 20 {
			t.Fatal("RequestHint never hit the ceiling")
		}
	}
	// Seven unblur steps, then four puzzle tiers.
	if granted != 11 {
		t.Errorf("image play granted %d hints, want 11", granted)
	}
	if d := p.Disclosure(); d.Mode != DisclosurePuzzle || d.Tier != maxScrambleTier {
		t.Errorf("ceiling disclosure = %+v, want puzzle tier %d", d, maxScrambleTier)
	}
}

func TestAutoEscalationImage(t *testing.T) {
	p := NewPlay(1, KindCharacter, "Batman", 0.02)

	for i := 1; i <= 2; i++ {
		if res := p.SubmitGuess("wrong"); res.Escalated {
			t.Fatalf("wrong guess %d escalated early", i)
		}
	}
	res := p.SubmitGuess("wrong")
	if !res.Escalated {
		t.Fatal("third consecutive wrong guess did not escalate")
	}
	if p.Progress.HintsUsed != 1 {
		t.Errorf("hints used = %d after escalation, want 1", p.Progress.HintsUsed)
	}

	// The streak resets; the next escalation needs three more wrong guesses.
	p.SubmitGuess("wrong")
	p.SubmitGuess("wrong")
	if res := p.SubmitGuess("wrong"); !res.Escalated {
		t.Error("streak did not rebuild after an escalation")
	}
	if p.Progress.HintsUsed != 2 {
		t.Errorf("hints used = %d, want 2", p.Progress.HintsUsed)
	}
}

func TestAutoEscalationQuoteThreshold(t *testing.T) {
	p := NewPlay(1, KindQuote, "Say my name", 0)

	for i := 1; i <= 4; i++ {
		if res := p.SubmitGuess("wrong"); res.Escalated {
			t.Fatalf("wrong guess %d escalated early; quotes escalate on the fifth", i)
		}
	}
	if res := p.SubmitGuess("wrong"); !res.Escalated {
		t.Error("fifth consecutive wrong guess did not escalate")
	}
}

func TestManualHintResetsWrongStreak(t *testing.T) {
	p := NewPlay(1, KindCharacter, "Batman", 0.02)

	p.SubmitGuess("wrong")
	p.SubmitGuess("wrong")
	if !p.RequestHint() {
		t.Fatal("RequestHint refused")
	}

	// Two pre-hint wrongs no longer count toward the streak.
	p.SubmitGuess("wrong")
	if res := p.SubmitGuess("wrong"); res.Escalated {
		t.Fatal("streak survived a manual hint")
	}
	if res := p.SubmitGuess("wrong"); !res.Escalated {
		t.Error("fresh three-wrong streak did not escalate")
	}
}

func TestAutoEscalationStopsAtCeiling(t *testing.T) {
	p := NewPlay(1, KindQuote, "Say my name", 0)
	for p.RequestHint() {
	}

	for i := 0; i < 12; i++ {
		if res := p.SubmitGuess("wrong"); res.Escalated {
			t.Fatal("escalated past the hint ceiling")
		}
	}
	if p.Progress.HintsUsed != 4 {
		t.Errorf("hints used = %d, want the ceiling of 4", p.Progress.HintsUsed)
	}
}
