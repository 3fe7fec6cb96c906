package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/locsanity/internal/record"
)

// runes is a Coverage backed by a string of supported characters.
type runes string

func (s runes) Covers(r rune) bool { return strings.ContainsRune(string(s), r) }

// collector is a Sink that keeps everything in memory.
type collector struct {
	findings []Finding
}

func (c *collector) Report(f Finding) error {
	c.findings = append(c.findings, f)
	return nil
}

func (c *collector) messages() []string {
	var out []string
	for _, f := range c.findings {
		out = append(out, f.Message)
	}
	return out
}

func fullEngine(fonts Coverage) *Engine {
	return Default(Options{
		BanCharacters: DefaultBanCharacters,
		Fonts:         fonts,
		Autofill:      true,
		TagParity:     true,
	})
}

func apply(t *testing.T, e *Engine, rec record.Record) []string {
	t.Helper()
	c := &collector{}
	n, err := e.Apply("sheet", 3, rec, c)
	require.NoError(t, err)
	require.Equal(t, n, len(c.findings))
	return c.messages()
}

func TestEngine_WhitespaceOnlyShortCircuits(t *testing.T) {
	// Nothing is covered, so any later rule would fire if it ran.
	e := fullEngine(runes(""))
	for _, tr := range []string{" ", "\t", "  \n ", "　"} {
		got := apply(t, e, record.Record{Original: "<b>Hi</b>", Translation: tr})
		assert.Equal(t, []string{"Nonempty whitespace line"}, got, "translation %q", tr)
	}
}

func TestEngine_MissingShortCircuits(t *testing.T) {
	e := fullEngine(runes(""))
	got := apply(t, e, record.Record{Original: "<b>Hi</b>", Translation: ""})
	assert.Equal(t, []string{"Missing translation"}, got)
}

func TestEngine_EmptyOriginalAndTranslation(t *testing.T) {
	got := apply(t, fullEngine(runes("")), record.Record{})
	assert.Empty(t, got)
}

func TestEngine_AutofillDoesNotShortCircuit(t *testing.T) {
	e := fullEngine(runes("Hello"))
	got := apply(t, e, record.Record{Original: "Hello!", Translation: "Hello!"})
	assert.Equal(t, []string{
		"Missing translation (autofilled)",
		"Character not supported by font `!`",
	}, got)
}

func TestAutofill(t *testing.T) {
	tests := []struct {
		name string
		rec  record.Record
		want bool
	}{
		{"latin copy", record.Record{Original: "OK", Translation: "OK"}, true},
		{"accented latin copy", record.Record{Original: "é", Translation: "é"}, true},
		{"digits only", record.Record{Original: "123", Translation: "123"}, false},
		{"cjk copy", record.Record{Original: "你好", Translation: "你好"}, false},
		{"translated", record.Record{Original: "OK", Translation: "好"}, false},
		{"case differs", record.Record{Original: "OK", Translation: "ok"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs, stop := Autofill{}.Check(tt.rec)
			assert.False(t, stop)
			assert.Equal(t, tt.want, len(msgs) == 1)
		})
	}
}

func TestForbidden_OnePerDistinctCharacter(t *testing.T) {
	f := NewForbidden(DefaultBanCharacters)
	msgs, stop := f.Check(record.Record{Translation: "你好。。。，……"})
	assert.False(t, stop)
	assert.Equal(t, []string{
		"Character explicitly forbidden: `。`",
		"Character explicitly forbidden: `，`",
		"Character explicitly forbidden: `…`",
	}, msgs)
}

func TestForbidden_Clean(t *testing.T) {
	msgs, _ := NewForbidden(DefaultBanCharacters).Check(record.Record{Translation: "你好, world."})
	assert.Empty(t, msgs)
}

func TestFontCoverage_PerOccurrenceAndSkipsWhitespace(t *testing.T) {
	c := NewFontCoverage(runes("ab"))
	msgs, stop := c.Check(record.Record{Translation: "a x\tx　b"})
	assert.False(t, stop)
	assert.Equal(t, []string{
		"Character not supported by font `x`",
		"Character not supported by font `x`",
	}, msgs)
}

func TestTagParity(t *testing.T) {
	tests := []struct {
		name        string
		orig, trans string
		want        []string
	}{
		{"same tags", "<b>hi</b>", "<b>你好</b>", nil},
		{"no tags", "hi", "你好", nil},
		{"reordered same multiset", "<i>a</i><b>b</b>", "<b>b</b><i>a</i>", nil},
		{
			"tags dropped", "<b>hi</b>", "你好",
			[]string{"Tag mismatch: original ['</b>', '<b>'], translation []"},
		},
		{
			"extra tag", "hi", "<br>你好",
			[]string{"Tag mismatch: original [], translation ['<br>']"},
		},
		{
			"duplicate count differs", "<br>a<br>", "<br>a",
			[]string{"Tag mismatch: original ['<br>', '<br>'], translation ['<br>']"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs, stop := TagParity{}.Check(record.Record{Original: tt.orig, Translation: tt.trans})
			assert.False(t, stop)
			assert.Equal(t, tt.want, msgs)
		})
	}
}

func TestTags_NonGreedy(t *testing.T) {
	assert.Equal(t, []string{"</color>", "<color=red>"}, Tags("<color=red>x</color>"))
}

func TestDefault_Order(t *testing.T) {
	e := fullEngine(runes(""))
	var names []string
	for _, r := range e.Rules() {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{
		"nonempty-whitespace",
		"missing-translation",
		"autofill",
		"forbidden-character",
		"font-coverage",
		"tag-parity",
	}, names)
}

func TestDefault_Toggles(t *testing.T) {
	e := Default(Options{})
	require.Len(t, e.Rules(), 2)

	got := apply(t, e, record.Record{Original: "<b>OK</b>", Translation: "<b>OK</b>。"})
	assert.Empty(t, got)
}

func TestEngine_FindingCarriesPosition(t *testing.T) {
	c := &collector{}
	rec := record.Record{Path: "p", Original: "Hi", Translation: "嗨。", Metadata: "m"}

	_, err := fullEngine(runes("嗨。")).Apply("menu", 7, rec, c)
	require.NoError(t, err)
	require.Len(t, c.findings, 1)
	assert.Equal(t, Finding{
		Message: "Character explicitly forbidden: `。`",
		Sheet:   "menu",
		Row:     7,
		Record:  rec,
	}, c.findings[0])
}

type failingSink struct{}

func (failingSink) Report(Finding) error { return errors.New("disk full") }

func TestEngine_SinkErrorAborts(t *testing.T) {
	n, err := fullEngine(runes("")).Apply("s", 0, record.Record{Original: "a", Translation: "bb"}, failingSink{})
	require.EqualError(t, err, "disk full")
	assert.Equal(t, 0, n)
}
