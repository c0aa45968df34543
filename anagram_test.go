package main

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func letterCounts(s string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}
	return counts
}

func puzzleLetters(p *Puzzle) string {
	var b strings.Builder
	for _, w := range p.Words {
		for _, t := range w.Tiles {
			b.WriteString(t.Letter)
		}
	}
	return b.String()
}

func TestNewPuzzleConservesLetters(t *testing.T) {
	answers := []string{
		"The Dark Knight",
		"Say my name",
		"Breaking Bad!",
		"X",
		"Café au lait",
		"  padded   whitespace  ",
	}

	for _, answer := range answers {
		want := letterCounts(strings.Join(strings.Fields(answer), ""))

		for tier := 1; tier <= maxScrambleTier; tier++ {
			p, err := NewPuzzle(answer, tier, 42)
			if err != nil {
				t.Fatalf("NewPuzzle(%q, %d): %v", answer, tier, err)
			}
			got := letterCounts(puzzleLetters(p))
			if !reflect.DeepEqual(got, want) {
				t.Errorf("NewPuzzle(%q, %d) letters = %v, want %v", answer, tier, got, want)
			}
		}
	}
}

func TestNewPuzzlePreservesWordShapes(t *testing.T) {
	// Word lengths survive every tier, including the global-bag tier where
	// letters migrate across word boundaries.
	answer := "The Dark Knight"
	wantLens := []int{3, 4, 6}

	for tier := 1; tier <= maxScrambleTier; tier++ {
		p, err := NewPuzzle(answer, tier, 7)
		if err != nil {
			t.Fatal(err)
		}
		if len(p.Words) != len(wantLens) {
			t.Fatalf("tier %d: %d words, want %d", tier, len(p.Words), len(wantLens))
		}
		for i, w := range p.Words {
			if len(w.Tiles) != wantLens[i] {
				t.Errorf("tier %d word %d: %d tiles, want %d", tier, i, len(w.Tiles), wantLens[i])
			}
		}
	}
}

func TestNewPuzzleTier2RespectsWordBoundaries(t *testing.T) {
	p, err := NewPuzzle("The Dark Knight", 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	for i, want := range []string{"The", "Dark", "Knight"} {
		var b strings.Builder
		for _, tile := range p.Words[i].Tiles {
			b.WriteString(tile.Letter)
			if tile.Locked {
				t.Errorf("tier 2 tile %d is locked; tier 2 locks nothing", tile.ID)
			}
		}
		if !reflect.DeepEqual(letterCounts(b.String()), letterCounts(want)) {
			t.Errorf("word %d letters = %q, want a permutation of %q", i, b.String(), want)
		}
	}
}

func TestNewPuzzleTier3LocksFirstLetters(t *testing.T) {
	p, err := NewPuzzle("The Dark Knight", 3, 11)
	if err != nil {
		t.Fatal(err)
	}

	for i, first := range []string{"T", "D", "K"} {
		tiles := p.Words[i].Tiles
		if tiles[0].Letter != first || !tiles[0].Locked {
			t.Errorf("word %d slot 0 = {%q locked=%v}, want {%q locked=true}",
				i, tiles[0].Letter, tiles[0].Locked, first)
		}
		for _, tile := range tiles[1:] {
			if tile.Locked {
				t.Errorf("word %d tile %d locked; tier 3 locks only the first slot", i, tile.ID)
			}
		}
	}
}

func TestNewPuzzleTier4LocksBothEnds(t *testing.T) {
	p, err := NewPuzzle("Knight is A", 4, 5)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		word      int
		first     string
		last      string
		wantLocks int
	}{
		{0, "K", "t", 2},
		{1, "i", "s", 2},
		{2, "A", "A", 1}, // one-letter word gets its single applicable lock
	}
	for _, tt := range tests {
		tiles := p.Words[tt.word].Tiles
		if tiles[0].Letter != tt.first || !tiles[0].Locked {
			t.Errorf("word %d first slot = {%q locked=%v}, want {%q locked=true}",
				tt.word, tiles[0].Letter, tiles[0].Locked, tt.first)
		}
		last := tiles[len(tiles)-1]
		if last.Letter != tt.last || !last.Locked {
			t.Errorf("word %d last slot = {%q locked=%v}, want {%q locked=true}",
				tt.word, last.Letter, last.Locked, tt.last)
		}
		locks := 0
		for _, tile := range tiles {
			if tile.Locked {
				locks++
			}
		}
		if locks != tt.wantLocks {
			t.Errorf("word %d has %d locks, want %d", tt.word, locks, tt.wantLocks)
		}
	}
}

func TestNewPuzzleSeedIsReproducible(t *testing.T) {
	seed := puzzleSeed("abcd1234", 7, 2)

	first, err := NewPuzzle("The Dark Knight", 2, seed)
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewPuzzle("The Dark Knight", 2, seed)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.Words, second.Words) {
		t.Error("same seed produced different tile layouts")
	}
}

func TestPuzzleSeedVariesByTier(t *testing.T) {
	if puzzleSeed("abcd1234", 7, 1) == puzzleSeed("abcd1234", 7, 2) {
		t.Error("adjacent tiers share a shuffle seed")
	}
	if puzzleSeed("abcd1234", 7, 1) == puzzleSeed("abcd1234", 8, 1) {
		t.Error("distinct questions share a shuffle seed")
	}
}

func TestNewPuzzleRejectsBadInput(t *testing.T) {
	if _, err := NewPuzzle("", 2, 1); !errors.Is(err, ErrMalformedAnswer) {
		t.Errorf("empty answer err = %v, want ErrMalformedAnswer", err)
	}
	if _, err := NewPuzzle("   \t ", 2, 1); !errors.Is(err, ErrMalformedAnswer) {
		t.Errorf("whitespace answer err = %v, want ErrMalformedAnswer", err)
	}
	for _, tier := range []int{0, -1, 5} {
		if _, err := NewPuzzle("fine", tier, 1); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("tier %d err = %v, want ErrInvalidLevel", tier, err)
		}
	}
}

func TestPuzzleSwap(t *testing.T) {
	p, err := NewPuzzle("The Dark Knight", 3, 11)
	if err != nil {
		t.Fatal(err)
	}

	// Slot 0 holds the locked first letter of "The"; 1 and 2 are free.
	if err := p.BeginDrag(0); err == nil {
		t.Error("BeginDrag accepted a locked tile")
	}
	if err := p.CompleteDrop(1, 0); err == nil {
		t.Error("CompleteDrop accepted a locked target")
	}

	a, b := p.tile(1).Letter, p.tile(2).Letter
	if err := p.BeginDrag(1); err != nil {
		t.Fatalf("BeginDrag(1): %v", err)
	}
	if err := p.CompleteDrop(1, 2); err != nil {
		t.Fatalf("CompleteDrop(1, 2): %v", err)
	}
	if p.tile(1).Letter != b || p.tile(2).Letter != a {
		t.Errorf("after swap tiles 1,2 = %q,%q; want %q,%q",
			p.tile(1).Letter, p.tile(2).Letter, b, a)
	}

	// Dropping a tile onto itself changes nothing.
	if err := p.CompleteDrop(2, 2); err != nil {
		t.Fatalf("self-drop: %v", err)
	}
	if p.tile(2).Letter != a {
		t.Error("self-drop changed the tile letter")
	}

	if err := p.CompleteDrop(1, 99); err == nil {
		t.Error("CompleteDrop accepted an unknown target id")
	}
}

func TestPuzzleGuessConcatenatesSlots(t *testing.T) {
	// Tier 4 on two-letter words locks every slot, so the layout is the
	// answer itself and the assembled guess must match it sans spaces.
	p, err := NewPuzzle("Go on", 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Guess(); got != "Goon" {
		t.Errorf("Guess() = %q, want %q", got, "Goon")
	}
}
