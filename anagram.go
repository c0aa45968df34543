package main

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
)

// Tile is one draggable letter slot. IDs are assigned left to right across
// the whole puzzle, so a tile ID doubles as a slot address.
type Tile struct {
	ID     int    `json:"id"`
	Letter string `json:"letter"`
	Locked bool   `json:"locked"`
}

// WordGroup holds the tiles belonging to one whitespace-delimited word of
// the answer. Punctuation attached to a word is a literal slot character.
type WordGroup struct {
	Tiles []Tile `json:"tiles"`
}

// Puzzle is a letter-scramble rendering of an answer at a given tier.
//
// Tier 1 (hardest): one global letter bag, shuffled, redistributed across
// word boundaries, nothing locked.
// Tier 2: shuffled per word; letters never cross word boundaries.
// Tier 3: first letter of each word locked in place, remainder shuffled.
// Tier 4 (easiest): first and last letter of each word locked, interior
// shuffled. A one-letter word gets its single applicable lock.
type Puzzle struct {
	Tier  int         `json:"tier"`
	Words []WordGroup `json:"words"`

	dragID int
}

// puzzleSeed derives a stable shuffle seed so the server re-derives the
// same puzzle it previously sent to a client.
func puzzleSeed(sessionID string, questionID uint, tier int) int64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%s/%d/%d", sessionID, questionID, tier)
	return int64(h.Sum64())
}

// shuffleRunes is an unbiased Fisher-Yates permutation, in place. The
// sort-by-random-comparator trick seen in some implementations is not a
// uniform shuffle and must not be used here.
func shuffleRunes(rng *rand.Rand, runes []rune) {
	rng.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
}

// NewPuzzle builds a deterministic letter-tile puzzle from the canonical
// answer at the given scramble tier. Escalating a tier re-derives the
// puzzle from scratch rather than patching the previous one, so locks may
// move between regenerations.
func NewPuzzle(answer string, tier int, seed int64) (*Puzzle, error) {
	if tier < 1 || tier > maxScrambleTier {
		return nil, fmt.Errorf("%w: scramble tier %d outside [1,%d]", ErrInvalidLevel, tier, maxScrambleTier)
	}

	words := strings.Fields(strings.TrimSpace(answer))
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: answer is empty or whitespace-only", ErrMalformedAnswer)
	}

	rng := rand.New(rand.NewSource(seed))

	p := &Puzzle{
		Tier:   tier,
		Words:  make([]WordGroup, 0, len(words)),
		dragID: -1,
	}

	var globalBag []rune
	if tier == 1 {
		globalBag = []rune(strings.Join(words, ""))
		shuffleRunes(rng, globalBag)
	}

	nextID := 0
	bagIndex := 0

	for _, word := range words {
		letters := []rune(word)

		var scrambled []rune
		locked := make([]bool, len(letters))

		switch tier {
		case 1:
			scrambled = globalBag[bagIndex : bagIndex+len(letters)]
			bagIndex += len(letters)
		case 2:
			scrambled = append([]rune(nil), letters...)
			shuffleRunes(rng, scrambled)
		case 3:
			rest := append([]rune(nil), letters[1:]...)
			shuffleRunes(rng, rest)
			scrambled = append([]rune{letters[0]}, rest...)
			locked[0] = true
		case 4:
			locked[0] = true
			if len(letters) > 1 {
				locked[len(letters)-1] = true
				interior := append([]rune(nil), letters[1:len(letters)-1]...)
				shuffleRunes(rng, interior)
				scrambled = append([]rune{letters[0]}, interior...)
				scrambled = append(scrambled, letters[len(letters)-1])
			} else {
				scrambled = letters
			}
		}

		group := WordGroup{Tiles: make([]Tile, 0, len(letters))}
		for i, r := range scrambled {
			group.Tiles = append(group.Tiles, Tile{
				ID:     nextID,
				Letter: string(r),
				Locked: locked[i],
			})
			nextID++
		}
		p.Words = append(p.Words, group)
	}

	return p, nil
}

func (p *Puzzle) tile(id int) *Tile {
	for wi := range p.Words {
		for ti := range p.Words[wi].Tiles {
			if p.Words[wi].Tiles[ti].ID == id {
				return &p.Words[wi].Tiles[ti]
			}
		}
	}
	return nil
}

// BeginDrag designates a tile as the drag source. Locked tiles reject the
// role.
func (p *Puzzle) BeginDrag(tileID int) error {
	t := p.tile(tileID)
	if t == nil {
		return fmt.Errorf("no tile with id %d", tileID)
	}
	if t.Locked {
		return fmt.Errorf("tile %d is locked", tileID)
	}
	p.dragID = tileID
	return nil
}

// CompleteDrop swaps the letters of the source and target tiles. Both ends
// of the swap must be unlocked; a drop onto the source itself is a no-op.
func (p *Puzzle) CompleteDrop(sourceID, targetID int) error {
	defer func() { p.dragID = -1 }()

	src := p.tile(sourceID)
	dst := p.tile(targetID)
	if src == nil || dst == nil {
		return fmt.Errorf("no tile with id %d", sourceID)
	}
	if src.Locked {
		return fmt.Errorf("tile %d is locked", sourceID)
	}
	if dst.Locked {
		return fmt.Errorf("tile %d is locked", targetID)
	}
	if sourceID == targetID {
		return nil
	}

	src.Letter, dst.Letter = dst.Letter, src.Letter
	return nil
}

// Guess assembles the player's answer by concatenating tile letters in slot
// order, locked tiles included, with no separators.
func (p *Puzzle) Guess() string {
	var b strings.Builder
	for _, w := range p.Words {
		for _, t := range w.Tiles {
			b.WriteString(t.Letter)
		}
	}
	return b.String()
}
