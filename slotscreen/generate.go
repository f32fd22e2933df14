package slotscreen

import "math/rand"

// defaultSeed is the fixed “zero” seed used when Config.Seed == 0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 42

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Random generates a cfg.Rows × cfg.Reels screen with each cell drawn
// uniformly from cfg.Symbols using the deterministic RNG for cfg.Seed:
// the same Config always yields the same screen.
// Returns ErrBadDimensions or ErrNoSymbols for invalid configuration.
//
// Complexity: O(Rows×Reels).
func Random(cfg Config) (Screen, error) {
	if cfg.Rows <= 0 || cfg.Reels <= 0 {
		return nil, ErrBadDimensions
	}
	if len(cfg.Symbols) == 0 {
		return nil, ErrNoSymbols
	}

	rng := rngFromSeed(cfg.Seed)
	s := make(Screen, cfg.Rows)
	for y := 0; y < cfg.Rows; y++ {
		row := make([]rune, cfg.Reels)
		for x := 0; x < cfg.Reels; x++ {
			row[x] = cfg.Symbols[rng.Intn(len(cfg.Symbols))]
		}
		s[y] = row
	}

	return s, nil
}

// Demo returns the fixed screen used by the interactive walkthrough.
// It contains two connected five-cell clusters: the A run across the
// top row and the F block in the lower right.
func Demo() Screen {
	return Screen{
		{'A', 'A', 'A', 'A', 'F'},
		{'B', 'B', 'A', 'F', 'F'},
		{'A', 'B', 'F', 'F', 'B'},
	}
}
