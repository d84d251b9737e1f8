package export

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dukaforge/chronicler/pkg/types"
)

// keyNotSet is the addressable key of a locale with no canonical text.
const keyNotSet = "<not set>"

// slugPunctuation is the punctuation set stripped from slugs.
const slugPunctuation = ".,/#!$%^&*;:{}=-_`~()"

// stripMarks drops combining marks after NFD decomposition, turning
// accented letters into their base form.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Slug normalizes a locale's English text into its stable lookup form:
// newlines become spaces, whitespace runs collapse to one space,
// punctuation maps to spaces, the trimmed result turns every remaining
// whitespace character into an underscore, then truncates to 50
// characters, lowercases, and strips diacritics. The step order is
// load-bearing: punctuation mapped after the collapse yields one
// underscore per character, so "Stormwind - Part 1" keys as
// "stormwind___part_1" and stays addressable from existing data packs.
func Slug(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(s)
	s = collapseWhitespaceRuns(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(slugPunctuation, r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	s = strings.TrimSpace(b.String())

	var u strings.Builder
	u.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			u.WriteRune('_')
		} else {
			u.WriteRune(r)
		}
	}
	s = u.String()

	if rs := []rune(s); len(rs) > 50 {
		s = string(rs[:50])
	}
	s = strings.ToLower(s)

	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}
	return s
}

// collapseWhitespaceRuns replaces every run of two or more whitespace
// characters with a single space. A lone whitespace character passes
// through unchanged.
func collapseWhitespaceRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	run := 0
	var last rune
	flush := func() {
		switch run {
		case 0:
		case 1:
			b.WriteRune(last)
		default:
			b.WriteRune(' ')
		}
		run = 0
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			run++
			last = r
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return b.String()
}

// LocaleKey derives the addressable key of a locale: "<id>_<slug>". A
// locale with no English text yields the "<not set>" sentinel.
func LocaleKey(l *types.Locale) string {
	if l == nil || l.EnUS == nil {
		return keyNotSet
	}
	return strconv.Itoa(l.ID) + "_" + Slug(*l.EnUS)
}
