package feedback

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in NFC form. All text entering the matcher is
// NFC-normalized first so composed and decomposed spellings compare equal.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Fold strips diacritics from s by decomposing to NFD and dropping every
// rune outside ASCII. Characters with no ASCII base form are dropped
// entirely, so folding "café" yields "cafe" and folding "日本" yields "".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(nonASCII)))
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

func nonASCII(r rune) bool {
	return r > unicode.MaxASCII
}

// IsASCII reports whether s contains only ASCII characters. Equivalent to
// s == Fold(s): ASCII text is NFD-invariant and folding only removes
// non-ASCII runes.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
