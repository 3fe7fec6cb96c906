package rules

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
	"unicode"

	"github.com/vk/locsanity/internal/record"
)

// DefaultBanCharacters is the full-width punctuation that must not appear in
// translations.
const DefaultBanCharacters = "。；，“”‘’……"

// Rule is a single check over one record.
type Rule interface {
	// Name identifies the rule in debug logs.
	Name() string
	// Check returns the messages for every problem found. When stop is true
	// no further rules run for this record.
	Check(rec record.Record) (msgs []string, stop bool)
}

// Coverage answers whether a character can be rendered by any loaded font.
type Coverage interface {
	Covers(r rune) bool
}

// WhitespaceOnly flags a translation that is non-empty but blank.
type WhitespaceOnly struct{}

func (WhitespaceOnly) Name() string { return "nonempty-whitespace" }

func (WhitespaceOnly) Check(rec record.Record) ([]string, bool) {
	if rec.Translation != "" && strings.TrimSpace(rec.Translation) == "" {
		return []string{"Nonempty whitespace line"}, true
	}
	return nil, false
}

// Missing flags an empty translation of a non-empty original.
type Missing struct{}

func (Missing) Name() string { return "missing-translation" }

func (Missing) Check(rec record.Record) ([]string, bool) {
	if rec.Translation == "" && rec.Original != "" {
		return []string{"Missing translation"}, true
	}
	return nil, false
}

// Autofill flags a translation copied verbatim from a Latin-script original.
type Autofill struct{}

func (Autofill) Name() string { return "autofill" }

func (Autofill) Check(rec record.Record) ([]string, bool) {
	if rec.Translation == rec.Original && hasLatinLetter(rec.Original) {
		return []string{"Missing translation (autofilled)"}, false
	}
	return nil, false
}

func hasLatinLetter(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) && unicode.Is(unicode.Latin, r)
	}) >= 0
}

// Forbidden flags banned characters. Each distinct character is reported
// once per record no matter how often it occurs.
type Forbidden struct {
	banned []rune
}

// NewForbidden builds the rule from a ban list; duplicate characters in the
// list are collapsed.
func NewForbidden(banList string) *Forbidden {
	var banned []rune
	for _, r := range banList {
		if !slices.Contains(banned, r) {
			banned = append(banned, r)
		}
	}
	return &Forbidden{banned: banned}
}

func (*Forbidden) Name() string { return "forbidden-character" }

func (f *Forbidden) Check(rec record.Record) ([]string, bool) {
	var msgs []string
	for _, r := range f.banned {
		if strings.ContainsRune(rec.Translation, r) {
			msgs = append(msgs, fmt.Sprintf("Character explicitly forbidden: `%c`", r))
		}
	}
	return msgs, false
}

// FontCoverage flags every non-whitespace character no loaded font can
// render. Repeated characters are reported once per occurrence.
type FontCoverage struct {
	fonts Coverage
}

func NewFontCoverage(fonts Coverage) *FontCoverage {
	return &FontCoverage{fonts: fonts}
}

func (*FontCoverage) Name() string { return "font-coverage" }

func (c *FontCoverage) Check(rec record.Record) ([]string, bool) {
	var msgs []string
	for _, r := range rec.Translation {
		if unicode.IsSpace(r) {
			continue
		}
		if !c.fonts.Covers(r) {
			msgs = append(msgs, fmt.Sprintf("Character not supported by font `%c`", r))
		}
	}
	return msgs, false
}

var tagPattern = regexp.MustCompile(`<.*?>`)

// TagParity flags a translation whose markup tags differ from the original's
// as a multiset.
type TagParity struct{}

func (TagParity) Name() string { return "tag-parity" }

func (TagParity) Check(rec record.Record) ([]string, bool) {
	orig := Tags(rec.Original)
	trans := Tags(rec.Translation)
	if slices.Equal(orig, trans) {
		return nil, false
	}
	return []string{fmt.Sprintf("Tag mismatch: original %s, translation %s", formatTags(orig), formatTags(trans))}, false
}

// Tags returns every `<...>` token in s, sorted.
func Tags(s string) []string {
	tags := tagPattern.FindAllString(s, -1)
	sort.Strings(tags)
	return tags
}

func formatTags(tags []string) string {
	quoted := make([]string, len(tags))
	for i, t := range tags {
		quoted[i] = "'" + t + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
