// Package slotmine finds winning-style patterns on slot-machine screens:
// connected clusters of identical symbols, grown apriori-style from
// adjacent pairs up to a configurable target size.
//
// 🚀 What is slotmine?
//
//	A small, deterministic pattern miner built from two pieces:
//		• apriori/    — the mining core: Node & Group models, adjacency
//		  pairing, symbol-uniformity pruning, grow-by-one combination,
//		  and the support-driven Mine orchestrator
//		• slotscreen/ — screen collaborators: validated rectangular
//		  screens, seeded random generation, the fixed demo layout,
//		  and masked console rendering
//
// ✨ Why slotmine?
//
//   - Deterministic – same screen and support ⇒ the same matches, every run
//   - Self-contained – one Mine call, everything in memory, nothing shared
//   - Extensible – observer hooks (OnStage) for demos and progress output
//   - Pure Go core – the algorithm packages carry no third-party imports
//
// The cmd/slotmine CLI wraps the library with a `demo` walkthrough and a
// `bench` timing harness; neither adds anything to mining semantics.
//
// Quick ASCII example (3×5 demo screen, support 5):
//
//	A A A A F        A A A A -        - - - - F
//	B B A F F   ⇒    - - A - -   and  - - - F F
//	A B F F B        - - - - -        - - F F -
//
// Dive into apriori/doc.go for the algorithm contract and complexity
// notes, and slotscreen/doc.go for the collaborator contracts.
//
//	go get github.com/katalvlaran/slotmine
package slotmine
