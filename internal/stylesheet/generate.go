// Package stylesheet compiles the CSS that backs every style identifier a
// registry can produce, and checks an existing sheet against a registry.
package stylesheet

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/quill/internal/ui/style"
	"github.com/alexisbeaulieu97/quill/internal/ui/theme"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

const header = "/* Generated by quill. Do not edit. */\n"

// Compile returns one rule per class the registry can produce, in registry
// order. Every missing class is reported, not just the first.
func Compile(reg *style.Registry, t theme.Theme) ([]Rule, error) {
	table, err := buildTable(t)
	if err != nil {
		return nil, err
	}

	var (
		rules []Rule
		errs  error
	)
	for _, class := range reg.Classes() {
		rule, ok := table[class]
		if !ok {
			block, option, value := split(reg, class)
			errs = multierr.Append(errs, quillerrors.NewStyleError(block, option, value, quillerrors.ErrMissingRule))
			continue
		}
		rules = append(rules, rule)
	}
	if errs != nil {
		return nil, errs
	}
	return rules, nil
}

// Generate renders the stylesheet for reg under theme t. Rules without a
// breakpoint come first in registry order, followed by one @media block per
// theme breakpoint.
func Generate(reg *style.Registry, t theme.Theme) ([]byte, error) {
	rules, err := Compile(reg, t)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	for _, r := range rules {
		if r.Media == "" {
			writeRule(&buf, r, "")
		}
	}

	for _, bp := range t.Breakpoints {
		var scoped []Rule
		for _, r := range rules {
			if r.Media == bp.Name {
				scoped = append(scoped, r)
			}
		}
		if len(scoped) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\n@media (min-width: %s) {\n", bp.MinWidth)
		for _, r := range scoped {
			writeRule(&buf, r, "  ")
		}
		buf.WriteString("}\n")
	}
	return buf.Bytes(), nil
}

// Fingerprint returns a short content hash suitable for cache-busting file
// names.
func Fingerprint(data []byte) string {
	h := xxhash.New()
	_, _ = h.Write(data)
	return fmt.Sprintf("%016x", h.Sum64())
}

// FileName returns the fingerprinted file name for a sheet.
func FileName(data []byte) string {
	return "styles." + Fingerprint(data) + ".css"
}

func writeRule(buf *bytes.Buffer, r Rule, indent string) {
	selector := r.Selector
	if selector == "" {
		selector = "." + string(r.Class)
	}
	if len(r.Declarations) == 0 {
		fmt.Fprintf(buf, "%s%s {}\n", indent, selector)
		return
	}
	fmt.Fprintf(buf, "%s%s {\n", indent, selector)
	for _, d := range r.Declarations {
		fmt.Fprintf(buf, "%s  %s: %s;\n", indent, d.Property, d.Value)
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}

// split recovers block, option and value from an identifier for error
// reporting.
func split(reg *style.Registry, class style.Class) (string, string, string) {
	for _, block := range reg.Blocks() {
		schema, _ := reg.Schema(block)
		if schema.Base() == class {
			return block, "", ""
		}
		for _, opt := range schema.Options {
			if opt.Flag {
				if schema.FlagIdentifier(opt) == class {
					return block, opt.Name, style.FlagOn
				}
				continue
			}
			for _, v := range opt.Values {
				if schema.Identifier(opt, v) == class {
					return block, opt.Name, v
				}
			}
		}
	}
	return string(class), "", ""
}
