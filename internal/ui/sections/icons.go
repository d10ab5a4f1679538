package sections

import (
	"fmt"
	"slices"

	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// Glyph is an icon handle in the Font Awesome brands set.
type Glyph struct {
	Set  string
	Name string
}

// ClassName returns the icon font classes for the glyph at the given size.
func (g Glyph) ClassName(size string) string {
	cls := g.Set + " fa-" + g.Name
	if size != "" {
		cls += " fa-" + size
	}
	return cls
}

var glyphs = map[string]Glyph{
	"github":   {Set: "fab", Name: "github"},
	"twitter":  {Set: "fab", Name: "twitter"},
	"linkedin": {Set: "fab", Name: "linkedin"},
}

// LookupGlyph resolves a social icon key to its glyph.
func LookupGlyph(icon string) (Glyph, error) {
	g, ok := glyphs[icon]
	if !ok {
		return Glyph{}, fmt.Errorf("icon %q: %w", icon, quillerrors.ErrUnknownIcon)
	}
	return g, nil
}

// IconKeys lists the supported icon keys, sorted.
func IconKeys() []string {
	keys := make([]string, 0, len(glyphs))
	for k := range glyphs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
