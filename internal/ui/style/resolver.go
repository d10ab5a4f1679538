// Package style resolves enumerated component options into ordered sets of
// style rule identifiers (CSS class names).
package style

import (
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// Values is a Variant Configuration: prop name to value. Flags are on when
// their entry equals FlagOn. Keys the schema does not declare are ignored.
type Values map[string]string

// Flag converts a boolean prop into its Values representation.
func Flag(on bool) string {
	if on {
		return FlagOn
	}
	return ""
}

// Resolve composes the style set for a configuration against a schema.
//
// Options are visited in declaration order; an omitted option resolves to its
// default and a flag contributes its identifier only when on. A value outside
// an option's enumeration is reported as a StyleError wrapping ErrOutOfDomain.
func Resolve(schema Schema, values Values) (ClassSet, error) {
	var set ClassSet
	for _, opt := range schema.Options {
		raw, present := values[opt.Name]

		if opt.Flag {
			if present && raw == FlagOn {
				set.Add(schema.FlagIdentifier(opt))
			}
			continue
		}

		value := opt.Default
		if present && raw != "" {
			value = raw
		}
		if !opt.Allows(value) {
			return ClassSet{}, quillerrors.NewStyleError(schema.Block, opt.Name, value, quillerrors.ErrOutOfDomain)
		}
		set.Add(schema.Identifier(opt, value))
	}
	return set, nil
}
