package stylesheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/quill/internal/ui/style"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// Report is the outcome of checking a stylesheet against a registry.
type Report struct {
	// Classes lists every class selector found in the sheet, sorted.
	Classes []string
	// Missing lists registry identifiers the sheet has no rule for.
	Missing []style.Class
	// Extra lists classes the sheet declares that no component produces.
	Extra []string
}

// OK reports whether every registry identifier is covered.
func (r Report) OK() bool {
	return len(r.Missing) == 0
}

// Selectors parses a CSS document and returns the class names its selectors
// declare, including those nested in @media blocks. Classes inside
// functional pseudo-classes such as :not() and inside attribute selectors
// are arguments, not declarations, and are skipped.
func Selectors(data []byte) ([]string, error) {
	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	seen := map[string]struct{}{}

	for {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse stylesheet: %w", err)
			}
			out := make([]string, 0, len(seen))
			for class := range seen {
				out = append(out, class)
			}
			slices.Sort(out)
			return out, nil

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			for _, class := range selectorClasses(parser.Values()) {
				seen[class] = struct{}{}
			}
		}
	}
}

// selectorClasses returns the classes named at the top level of a selector
// list: a "." delimiter directly followed by an identifier.
func selectorClasses(tokens []css.Token) []string {
	var out []string
	depth := 0
	for i, tok := range tokens {
		switch tok.TokenType {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		case css.DelimToken:
			if depth > 0 || string(tok.Data) != "." || i+1 >= len(tokens) {
				continue
			}
			if next := tokens[i+1]; next.TokenType == css.IdentToken {
				out = append(out, string(next.Data))
			}
		}
	}
	return out
}

// Verify checks that data declares a rule for every identifier reg can
// produce. The returned error aggregates one StyleError per missing class.
func Verify(reg *style.Registry, data []byte) (Report, error) {
	classes, err := Selectors(data)
	if err != nil {
		return Report{}, err
	}

	declared := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		declared[c] = struct{}{}
	}

	report := Report{Classes: classes}
	known := make(map[string]struct{})
	var errs error
	for _, class := range reg.Classes() {
		known[string(class)] = struct{}{}
		if _, ok := declared[string(class)]; ok {
			continue
		}
		report.Missing = append(report.Missing, class)
		block, option, value := split(reg, class)
		errs = multierr.Append(errs, quillerrors.NewStyleError(block, option, value, quillerrors.ErrMissingRule))
	}
	for _, c := range classes {
		if _, ok := known[c]; !ok {
			report.Extra = append(report.Extra, c)
		}
	}
	return report, errs
}
