// Package slotscreen defines the Screen type, generation Config, and
// sentinel errors for the slotscreen subpackage of
// github.com/katalvlaran/slotmine.
package slotscreen

import "errors"

// Sentinel errors for screen generation.
var (
	// ErrBadDimensions indicates a non-positive row or reel count.
	ErrBadDimensions = errors.New("slotscreen: rows and reels must be positive")
	// ErrNoSymbols indicates an empty symbol alphabet.
	ErrNoSymbols = errors.New("slotscreen: symbol alphabet must not be empty")
)

// Screen is a rectangular arrangement of symbols: Rows() sequences of
// equal length Reels(). Screens are read-only inputs to the miner.
type Screen [][]rune

// Rows returns the number of rows.
func (s Screen) Rows() int {
	return len(s)
}

// Reels returns the number of reels (columns); 0 for an empty screen.
func (s Screen) Reels() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

// Config collects the tunable parameters for screen generation. It
// replaces ambient globals: callers build one and hand it to Random.
type Config struct {
	// Rows is the number of screen rows.
	Rows int
	// Reels is the number of reels (columns).
	Reels int
	// Symbols is the alphabet drawn from during generation.
	Symbols []rune
	// Seed drives the deterministic RNG; 0 selects the fixed default.
	Seed int64
}

// DefaultConfig returns the reference configuration: a 3×5 screen over
// the first ten uppercase letters, seed 0 (⇒ the fixed default seed).
func DefaultConfig() Config {
	symbols := make([]rune, 10)
	for i := range symbols {
		symbols[i] = rune('A' + i)
	}

	return Config{Rows: 3, Reels: 5, Symbols: symbols, Seed: 0}
}
