// Package theme holds the immutable design tokens the stylesheet is compiled
// from: palette, spacing and type scales, container widths and breakpoints.
package theme

// ColourSet groups the colours of one semantic palette slot.
type ColourSet struct {
	Base   string
	OnBase string
	Muted  string
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Text      ColourSet
}

// Scale maps a token name (none, xs, s, m, l, xl, xxl) to a CSS length.
type Scale map[string]string

// Lookup returns the length for a step.
func (s Scale) Lookup(step string) (string, bool) {
	v, ok := s[step]
	return v, ok
}

// Breakpoint is a named min-width media query.
type Breakpoint struct {
	Name     string
	MinWidth string
}

// Theme represents an immutable design token set. Themes are created once and
// reused; the With* methods return modified copies.
type Theme struct {
	Palette     Palette
	Spacing     Scale
	Gutters     Scale
	FontSizes   Scale
	FontFamily  string
	LineHeight  string
	Container   string
	Breakpoints []Breakpoint
	BorderWidth string
}

// DefaultTheme returns the blog's default theme.
func DefaultTheme() Theme {
	return Theme{
		Palette: Palette{
			Primary: ColourSet{
				Base:   "#3b82f6",
				OnBase: "#f8fafc",
				Muted:  "#2563eb",
			},
			Secondary: ColourSet{
				Base:   "#1f2937",
				OnBase: "#f9fafb",
				Muted:  "#9ca3af",
			},
			Surface: ColourSet{
				Base:   "#ffffff",
				OnBase: "#111827",
				Muted:  "#f3f4f6",
			},
			Text: ColourSet{
				Base:   "#111827",
				OnBase: "#ffffff",
				Muted:  "#6b7280",
			},
		},
		Spacing: Scale{
			"none": "0",
			"xs":   "0.25rem",
			"s":    "0.5rem",
			"m":    "1rem",
			"l":    "2rem",
			"xl":   "3rem",
		},
		Gutters: Scale{
			"none": "0",
			"s":    "0.5rem",
			"m":    "1rem",
			"l":    "1.5rem",
		},
		FontSizes: Scale{
			"xs":  "0.75rem",
			"s":   "0.875rem",
			"m":   "1rem",
			"l":   "1.25rem",
			"xl":  "1.5rem",
			"xxl": "2rem",
		},
		FontFamily:  `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif`,
		LineHeight:  "1.6",
		Container:   "960px",
		BorderWidth: "1px",
		Breakpoints: []Breakpoint{
			{Name: "md", MinWidth: "768px"},
			{Name: "lg", MinWidth: "1024px"},
		},
	}
}

// Breakpoint returns the breakpoint with the given name.
func (t Theme) Breakpoint(name string) (Breakpoint, bool) {
	for _, bp := range t.Breakpoints {
		if bp.Name == name {
			return bp, true
		}
	}
	return Breakpoint{}, false
}

// WithPalette returns a copy of the theme using palette.
func (t Theme) WithPalette(palette Palette) Theme {
	t.Palette = palette
	return t
}

// WithContainer returns a copy of the theme with a different container width.
func (t Theme) WithContainer(width string) Theme {
	t.Container = width
	return t
}
