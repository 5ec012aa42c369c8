// Package fuzzy implements subsequence-based fuzzy string matching with
// tunable scoring.
//
// A query matches a text when every query character occurs in the text in
// the same relative order, not necessarily contiguously. Matching is
// case-insensitive and runs in a single pass over the text.
//
// # Scoring
//
// The score rewards matches that a person scanning a list would consider
// good:
//
//   - adjacent matched characters (AdjBonus)
//   - matches right after a separator character (SepBonus)
//   - matches on a camelCase boundary (CamelBonus)
//   - few characters before the first match (LeadPenalty, floored at
//     MaxLeadPenalty)
//   - few unmatched characters overall (UnmatchedPenalty)
//
// Scores have no fixed range; only relative ordering between candidates is
// meaningful. With the default negative UnmatchedPenalty an empty query
// matches everything and scores shorter texts higher.
//
// For repeated query letters the scorer carries a single "pending" match
// slot: when a later occurrence of the current letter would score higher
// than the one already held, the held one is released as unmatched and the
// better occurrence takes its place. This gives near-optimal placement for
// repeated letters without backtracking, keeping the pass linear.
//
// # Usage
//
//	m := fuzzy.New(fuzzy.DefaultWeights())
//	res := m.Match("fx", "Firefox")
//	if res.Matched {
//	    fmt.Println(res.Score)
//	}
//
// Results are memoized per (query, text) pair for the lifetime of the
// Matcher. The memo is private to the instance and never persisted.
package fuzzy
