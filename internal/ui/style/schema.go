package style

import (
	"fmt"
	"slices"
)

const (
	separator = "_"
	flagValue = "yes"
	// FlagOn is the Values entry that switches a boolean option on.
	FlagOn = "true"
)

// Option declares one configurable option of a component.
type Option struct {
	// Name is the prop name consulted in Values.
	Name string
	// Key is the namespace key used in identifiers. Defaults to Name.
	Key string
	// Default is substituted when the option is omitted. Unused for flags.
	Default string
	// Values is the option's enumeration. Unused for flags.
	Values []string
	// Flag marks a boolean option contributing one fixed identifier when on.
	Flag bool
}

func (o Option) key() string {
	if o.Key != "" {
		return o.Key
	}
	return o.Name
}

// Allows reports whether value belongs to the option's enumeration.
func (o Option) Allows(value string) bool {
	return slices.Contains(o.Values, value)
}

// Schema is the fixed option schema of one component. Block is the component's
// base class and the first segment of every identifier it produces.
type Schema struct {
	Block   string
	Options []Option
}

// Base returns the block's own class.
func (s Schema) Base() Class {
	return Class(s.Block)
}

// Identifier forms the rule identifier for an option value.
func (s Schema) Identifier(opt Option, value string) Class {
	return Class(s.Block + separator + opt.key() + separator + value)
}

// FlagIdentifier forms the identifier a flag contributes when on.
func (s Schema) FlagIdentifier(opt Option) Class {
	return s.Identifier(opt, flagValue)
}

// Option looks up a declared option by prop name.
func (s Schema) Option(name string) (Option, bool) {
	for _, opt := range s.Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

func (s Schema) validate() error {
	if s.Block == "" {
		return fmt.Errorf("schema has empty block")
	}
	names := make(map[string]struct{}, len(s.Options))
	for _, opt := range s.Options {
		if opt.Name == "" {
			return fmt.Errorf("block %s: option with empty name", s.Block)
		}
		if _, dup := names[opt.Name]; dup {
			return fmt.Errorf("block %s: duplicate option %s", s.Block, opt.Name)
		}
		names[opt.Name] = struct{}{}

		if opt.Flag {
			if len(opt.Values) > 0 || opt.Default != "" {
				return fmt.Errorf("block %s: flag %s declares values", s.Block, opt.Name)
			}
			continue
		}
		if len(opt.Values) == 0 {
			return fmt.Errorf("block %s: option %s has empty enumeration", s.Block, opt.Name)
		}
		if !opt.Allows(opt.Default) {
			return fmt.Errorf("block %s: option %s default %q not in enumeration", s.Block, opt.Name, opt.Default)
		}
	}
	return nil
}

func (s Schema) clone() Schema {
	opts := make([]Option, len(s.Options))
	for i, opt := range s.Options {
		opt.Values = slices.Clone(opt.Values)
		opts[i] = opt
	}
	return Schema{Block: s.Block, Options: opts}
}
