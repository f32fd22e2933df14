// Package slotscreen supplies and displays the rectangular symbol
// screens consumed by the apriori miner.
//
// What:
//
//   - Screen: a rows × reels arrangement of symbol runes.
//   - Config: explicit generation parameters (rows, reels, alphabet, seed).
//   - Random: deterministic seeded screen generation.
//   - Demo: the fixed walkthrough screen.
//   - Render: console output with optional masking of non-pattern cells.
//
// Why:
//
//   - The miner takes only a screen and a support value; everything
//     configurable lives here, passed explicitly — no ambient state.
//   - Deterministic generation makes timing runs and tests repeatable.
//
// Complexity:
//
//   - Random, Render: O(rows×reels) time and memory.
//
// Errors:
//
//   - ErrBadDimensions: non-positive row or reel count.
//   - ErrNoSymbols: empty symbol alphabet.
package slotscreen
