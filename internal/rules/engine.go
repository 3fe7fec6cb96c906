package rules

import (
	"github.com/vk/locsanity/internal/record"
)

// Finding is one reported problem.
type Finding struct {
	Message string
	Sheet   string
	// Row is 0-based within the sheet's data section.
	Row    int
	Record record.Record
}

// Sink receives findings as soon as they are produced.
type Sink interface {
	Report(f Finding) error
}

// Options selects and parameterizes the default rule set.
type Options struct {
	BanCharacters string
	// Fonts enables the coverage rule when non-nil.
	Fonts     Coverage
	Autofill  bool
	TagParity bool
}

// Engine applies an ordered list of rules to records.
type Engine struct {
	rules []Rule
}

// NewEngine returns an engine running rules in the given order.
func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: rules}
}

// Default builds the standard rule order: whitespace, missing, autofill,
// forbidden characters, font coverage, tag parity.
func Default(opts Options) *Engine {
	rules := []Rule{WhitespaceOnly{}, Missing{}}
	if opts.Autofill {
		rules = append(rules, Autofill{})
	}
	if opts.BanCharacters != "" {
		rules = append(rules, NewForbidden(opts.BanCharacters))
	}
	if opts.Fonts != nil {
		rules = append(rules, NewFontCoverage(opts.Fonts))
	}
	if opts.TagParity {
		rules = append(rules, TagParity{})
	}
	return NewEngine(rules...)
}

// Rules returns the configured rules in application order.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Apply runs every rule against rec and reports each finding to sink. It
// returns the number of findings reported; a sink error aborts immediately.
func (e *Engine) Apply(sheet string, row int, rec record.Record, sink Sink) (int, error) {
	n := 0
	for _, rule := range e.rules {
		msgs, stop := rule.Check(rec)
		for _, msg := range msgs {
			if err := sink.Report(Finding{Message: msg, Sheet: sheet, Row: row, Record: rec}); err != nil {
				return n, err
			}
			n++
		}
		if stop {
			break
		}
	}
	return n, nil
}
