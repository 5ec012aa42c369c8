package fuzzy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchEmptyQuery(t *testing.T) {
	m := New(DefaultWeights())

	tests := []struct {
		text      string
		wantScore int
	}{
		{"", 0},
		{"a", -1},
		{"Firefox", -7},
		{"日本語", -3}, // rune count, not byte count
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res := m.Match("", tt.text)
			assert.True(t, res.Matched, "empty query must match")
			assert.Equal(t, tt.wantScore, res.Score)
		})
	}
}

func TestMatchIdentical(t *testing.T) {
	m := New(DefaultWeights())

	for _, text := range []string{"abc", "Firefox", "main.go"} {
		t.Run(text, func(t *testing.T) {
			exact := m.Match(text, text)
			longer := m.Match(text, text+"x")

			require.True(t, exact.Matched)
			require.True(t, longer.Matched)
			assert.Greater(t, exact.Score, longer.Score,
				"trailing unmatched character must lower the score")
		})
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	m := New(DefaultWeights())

	assert.True(t, m.Match("abc", "ABC").Matched)
	assert.True(t, m.Match("ABC", "abc").Matched)
	assert.True(t, m.Match("fF", "Firefox").Matched)
}

func TestMatchOrderSensitive(t *testing.T) {
	m := New(DefaultWeights())

	assert.False(t, m.Match("ba", "ab").Matched, "subsequence order must hold")
	assert.False(t, m.Match("xf", "Firefox").Matched)
	assert.True(t, m.Match("fx", "Firefox").Matched)
}

func TestMatchNonMatch(t *testing.T) {
	m := New(DefaultWeights())

	assert.False(t, m.Match("q", "Firefox").Matched)
	assert.False(t, m.Match("firefoxx", "Firefox").Matched)
	assert.False(t, m.Match("a", "").Matched)
}

func TestScoreAdjacencyBonus(t *testing.T) {
	m := New(DefaultWeights())

	adjacent := m.Match("ab", "ab")
	gapped := m.Match("ab", "axb")

	require.True(t, adjacent.Matched)
	require.True(t, gapped.Matched)
	assert.Greater(t, adjacent.Score, gapped.Score)
}

func TestScoreSeparatorBonus(t *testing.T) {
	m := New(DefaultWeights())

	afterSep := m.Match("b", "foo_bar")
	inWord := m.Match("b", "foobar")

	require.True(t, afterSep.Matched)
	require.True(t, inWord.Matched)
	assert.Greater(t, afterSep.Score, inWord.Score,
		"match after separator must outrank in-word match")
}

func TestScoreCamelBonus(t *testing.T) {
	m := New(DefaultWeights())

	camel := m.Match("fb", "FooBar")
	flat := m.Match("fb", "foobar")

	require.True(t, camel.Matched)
	require.True(t, flat.Matched)
	assert.Equal(t, 10, camel.Score-flat.Score,
		"camel boundary adds exactly the camel bonus")
}

func TestScoreLeadingPenaltyCap(t *testing.T) {
	m := New(DefaultWeights())

	// First match at index 2: 2 * -3 = -6, above the -9 floor.
	near := m.Match("c", "abc")
	// First match at index 6: 6 * -3 = -18, floored at -9.
	far := m.Match("g", "abcdefg")

	require.True(t, near.Matched)
	require.True(t, far.Matched)
	// near: 2 unmatched chars (-2) plus uncapped lead 2*-3 = -6.
	assert.Equal(t, -8, near.Score)
	// far: 6 unmatched chars (-6) plus lead floored at -9, not -18.
	assert.Equal(t, -15, far.Score)
}

func TestScoreKnownValues(t *testing.T) {
	m := New(DefaultWeights())

	tests := []struct {
		query string
		text  string
		want  int
	}{
		// First char: sep bonus 10; then two adjacency bonuses of 5 each.
		{"abc", "abc", 20},
		// As above plus one trailing unmatched char.
		{"abc", "abcx", 19},
		// f at 0 (sep bonus 10), x at 6, five unmatched in between/after.
		{"fx", "Firefox", 6},
	}

	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.text, func(t *testing.T) {
			res := m.Match(tt.query, tt.text)
			require.True(t, res.Matched)
			assert.Equal(t, tt.want, res.Score)
		})
	}
}

func TestScoreRepeatedLetterPrefersBetterOccurrence(t *testing.T) {
	m := New(DefaultWeights())

	// Both occurrences of "a" can start the match; the one after the
	// separator scores better and must win without breaking the match.
	res := m.Match("ab", "xa-ab")
	require.True(t, res.Matched)

	greedy := m.Match("ab", "xa-a")
	assert.False(t, greedy.Matched, "query must still need the b")
}

func TestMatchCustomWeights(t *testing.T) {
	w := DefaultWeights()
	w.UnmatchedPenalty = -2
	m := New(w)

	res := m.Match("", "abcd")
	require.True(t, res.Matched)
	assert.Equal(t, -8, res.Score)

	w2 := DefaultWeights()
	w2.Separators = ":"
	m2 := New(w2)
	// "_" is no longer a separator, ":" is.
	assert.Greater(t, m2.Match("b", "a:b").Score, m2.Match("b", "a_b").Score)
}

func TestMatchMemoized(t *testing.T) {
	m := New(DefaultWeights())

	first := m.Match("fx", "Firefox")
	assert.Equal(t, 1, m.memo.len())

	second := m.Match("fx", "Firefox")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, m.memo.len(), "repeated pair must not grow the memo")

	m.Match("fx", "firefox")
	assert.Equal(t, 2, m.memo.len(), "memo keys are exact pairs")
}

func TestMemoEviction(t *testing.T) {
	mm := newMemo(2)

	mm.put("a", "x", Result{Matched: true, Score: 1})
	mm.put("b", "x", Result{Matched: true, Score: 2})

	// Touch "a" so "b" is the eviction candidate.
	_, ok := mm.get("a", "x")
	require.True(t, ok)

	mm.put("c", "x", Result{Matched: true, Score: 3})

	_, ok = mm.get("b", "x")
	assert.False(t, ok, "least recently used entry must be evicted")
	_, ok = mm.get("a", "x")
	assert.True(t, ok)
	_, ok = mm.get("c", "x")
	assert.True(t, ok)
}

func BenchmarkMatch(b *testing.B) {
	m := New(DefaultWeights())
	texts := make([]string, 1000)
	for i := range texts {
		texts[i] = fmt.Sprintf("path/to/Component%d.go", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Match("cmp42", texts[i%len(texts)])
	}
}

func BenchmarkMatchMemoized(b *testing.B) {
	m := New(DefaultWeights())
	m.Match("cmp", "path/to/Component.go")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Match("cmp", "path/to/Component.go")
	}
}
