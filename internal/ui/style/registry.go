package style

import (
	"fmt"

	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// Registry is the immutable table of component schemas. It is built once and
// shared by reference; nothing mutates it after construction.
type Registry struct {
	schemas map[string]Schema
	order   []string
}

// NewRegistry validates and copies the supplied schemas.
func NewRegistry(schemas ...Schema) (*Registry, error) {
	r := &Registry{
		schemas: make(map[string]Schema, len(schemas)),
		order:   make([]string, 0, len(schemas)),
	}
	for _, schema := range schemas {
		if err := schema.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.schemas[schema.Block]; dup {
			return nil, fmt.Errorf("duplicate block %s", schema.Block)
		}
		r.schemas[schema.Block] = schema.clone()
		r.order = append(r.order, schema.Block)
	}
	return r, nil
}

// MustRegistry is NewRegistry for package-level initialisation.
func MustRegistry(schemas ...Schema) *Registry {
	r, err := NewRegistry(schemas...)
	if err != nil {
		panic(err)
	}
	return r
}

// Schema returns a copy of the schema declared for block.
func (r *Registry) Schema(block string) (Schema, bool) {
	s, ok := r.schemas[block]
	if !ok {
		return Schema{}, false
	}
	return s.clone(), true
}

// Blocks lists the declared blocks in registration order.
func (r *Registry) Blocks() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Resolve composes the style set for block.
func (r *Registry) Resolve(block string, values Values) (ClassSet, error) {
	schema, ok := r.schemas[block]
	if !ok {
		return ClassSet{}, quillerrors.NewStyleError(block, "", "", quillerrors.ErrUnknownBlock)
	}
	return Resolve(schema, values)
}

// Classes enumerates every identifier the registry can produce: each block's
// base class followed by one identifier per option value and flag.
func (r *Registry) Classes() []Class {
	var out []Class
	for _, block := range r.order {
		out = append(out, BlockClasses(r.schemas[block])...)
	}
	return out
}

// BlockClasses enumerates the identifiers a single schema can produce.
func BlockClasses(schema Schema) []Class {
	out := []Class{schema.Base()}
	for _, opt := range schema.Options {
		if opt.Flag {
			out = append(out, schema.FlagIdentifier(opt))
			continue
		}
		for _, v := range opt.Values {
			out = append(out, schema.Identifier(opt, v))
		}
	}
	return out
}
