package fuzzy

import "unicode"

// DefaultSeparators are the characters treated as word boundaries for
// separator bonuses (note the trailing space).
const DefaultSeparators = "_-.([/ "

// Weights configures the scoring pass. All values are caller-supplied;
// penalties are negative.
type Weights struct {
	// AdjBonus is added when the previous text character also matched.
	AdjBonus int

	// SepBonus is added when the match follows a separator character.
	SepBonus int

	// CamelBonus is added when the match sits on a lowercase-to-uppercase
	// boundary.
	CamelBonus int

	// LeadPenalty is applied per character before the first match.
	LeadPenalty int

	// MaxLeadPenalty floors the total leading penalty.
	MaxLeadPenalty int

	// UnmatchedPenalty is applied per unmatched text character.
	UnmatchedPenalty int

	// Separators are the characters treated as word boundaries.
	Separators string
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{
		AdjBonus:         5,
		SepBonus:         10,
		CamelBonus:       10,
		LeadPenalty:      -3,
		MaxLeadPenalty:   -9,
		UnmatchedPenalty: -1,
		Separators:       DefaultSeparators,
	}
}

// Result is the outcome of matching a query against one text.
type Result struct {
	// Matched reports whether every query character was found in order.
	Matched bool

	// Score ranks the match; higher is better. Only relative ordering
	// between texts matched against the same query is meaningful.
	Score int
}

// Matcher performs fuzzy matching with a fixed set of weights.
// Results are memoized for the lifetime of the instance.
type Matcher struct {
	weights Weights
	seps    map[rune]bool
	memo    *memo
}

// New creates a Matcher with the given weights.
func New(w Weights) *Matcher {
	seps := make(map[rune]bool, len(w.Separators))
	for _, r := range w.Separators {
		seps[r] = true
	}
	return &Matcher{
		weights: w,
		seps:    seps,
		memo:    newMemo(defaultMemoSize),
	}
}

// Weights returns the weights the matcher was built with.
func (m *Matcher) Weights() Weights {
	return m.weights
}

// Match reports whether query fuzzy-matches text and how well.
// An empty query always matches, scoring every text character as unmatched.
func (m *Matcher) Match(query, text string) Result {
	if r, ok := m.memo.get(query, text); ok {
		return r
	}
	r := m.score(query, text)
	m.memo.put(query, text, r)
	return r
}

// score runs the single-pass scoring scan.
//
// The pass carries at most one uncommitted ("pending") occurrence of the
// current query character. The pending slot is committed when the query
// advances past its character or when the same letter repeats in the query,
// and may be replaced mid-flight by a later occurrence that scores at least
// as well. The order of these checks is load-bearing: reordering them
// changes scores for texts with repeated letters.
func (m *Matcher) score(query, text string) Result {
	q := []rune(query)

	score := 0
	qIdx := 0
	prevMatch := false
	prevLower := false
	prevSep := true // a match on the first character earns the separator bonus

	pendingLower := rune(0)
	pendingScore := 0
	hasPending := false

	tIdx := 0
	for _, c := range text {
		var qLower rune
		inQuery := qIdx < len(q)
		if inQuery {
			qLower = unicode.ToLower(q[qIdx])
		}
		cLower := unicode.ToLower(c)
		cUpper := unicode.ToUpper(c)

		nextMatch := inQuery && qLower == cLower
		rematch := hasPending && pendingLower == cLower

		advanced := nextMatch && hasPending
		repeat := hasPending && inQuery && pendingLower == qLower

		if advanced || repeat {
			score += pendingScore
			hasPending = false
			pendingScore = 0
		}

		if nextMatch || rematch {
			newScore := 0

			// Penalty for the characters before the first match, floored
			// at MaxLeadPenalty (penalties are negative).
			if qIdx == 0 {
				lead := tIdx * m.weights.LeadPenalty
				if lead < m.weights.MaxLeadPenalty {
					lead = m.weights.MaxLeadPenalty
				}
				score += lead
			}

			if prevMatch {
				newScore += m.weights.AdjBonus
			}
			if prevSep {
				newScore += m.weights.SepBonus
			}
			if prevLower && c == cUpper && cLower != cUpper {
				newScore += m.weights.CamelBonus
			}

			if nextMatch {
				qIdx++
			}

			// Adopt this occurrence as the pending match if it scores at
			// least as well; the displaced occurrence counts as unmatched.
			if newScore >= pendingScore {
				if hasPending {
					score += m.weights.UnmatchedPenalty
				}
				pendingLower = cLower
				pendingScore = newScore
				hasPending = true
			}

			prevMatch = true
		} else {
			score += m.weights.UnmatchedPenalty
			prevMatch = false
		}

		prevLower = c == cLower && cLower != cUpper
		prevSep = m.seps[c]
		tIdx++
	}

	if hasPending {
		score += pendingScore
	}

	return Result{Matched: qIdx == len(q), Score: score}
}
