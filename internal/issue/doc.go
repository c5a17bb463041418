// Package issue provides the append-only conversion issue log shared by all
// engine components.
//
// Key capabilities:
//   - Unsupported assertion/step reports with placeholders cross-referenced by name
//   - Degraded path or script translation notes
//   - Low-confidence heuristic guesses surfaced as info entries
//
// The log lives for one whole-project conversion run and is rendered by the
// report package afterwards; entries are never mutated once appended.
package issue
