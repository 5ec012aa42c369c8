package feedback

import (
	"sort"

	"github.com/dshills/fuzzyfeed/internal/fuzzy"
)

// Filter applies a fuzzy matcher to a document's items.
type Filter struct {
	matcher *fuzzy.Matcher
}

// NewFilter creates a filter backed by the given matcher.
func NewFilter(m *fuzzy.Matcher) *Filter {
	return &Filter{matcher: m}
}

// Apply filters the document's items against query in place. Items that do
// not match are dropped and survivors are sorted by descending score; items
// with equal scores keep their original relative order.
//
// The fold mode is decided once per call: a pure-ASCII query is compared
// against diacritic-folded item text, so "cafe" can match "café". A query
// containing non-ASCII characters is compared against item text as-is.
func (f *Filter) Apply(doc *Document, query string) error {
	query = Normalize(query)
	fold := IsASCII(query)

	type scored struct {
		item  Item
		score int
	}

	kept := make([]scored, 0, doc.Len())
	for _, it := range doc.Items() {
		text := it.MatchText()
		if fold {
			text = Fold(text)
		}
		res := f.matcher.Match(query, text)
		if !res.Matched {
			continue
		}
		kept = append(kept, scored{item: it, score: res.Score})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	items := make([]Item, len(kept))
	for i, s := range kept {
		items[i] = s.item
	}
	return doc.SetItems(items)
}
