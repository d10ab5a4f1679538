package components

import "strconv"

// AlignItems specifies how a Row aligns its children on the cross axis.
type AlignItems string

const (
	AlignItemsFlex    AlignItems = "flex"
	AlignItemsStart   AlignItems = "start"
	AlignItemsEnd     AlignItems = "end"
	AlignItemsCenter  AlignItems = "center"
	AlignItemsStretch AlignItems = "stretch"
)

// Values lists the enumeration.
func (AlignItems) Values() []string {
	return names(AlignItemsFlex, AlignItemsStart, AlignItemsEnd, AlignItemsCenter, AlignItemsStretch)
}

// Justify specifies how a Row distributes children on the main axis.
type Justify string

const (
	JustifyStart        Justify = "start"
	JustifyEnd          Justify = "end"
	JustifyCenter       Justify = "center"
	JustifySpaceBetween Justify = "spaceBetween"
	JustifySpaceAround  Justify = "spaceAround"
)

// Values lists the enumeration.
func (Justify) Values() []string {
	return names(JustifyStart, JustifyEnd, JustifyCenter, JustifySpaceBetween, JustifySpaceAround)
}

// Gutter is the gap between a Row's columns.
type Gutter string

const (
	GutterNone Gutter = "none"
	GutterS    Gutter = "s"
	GutterM    Gutter = "m"
	GutterL    Gutter = "l"
)

// Values lists the enumeration.
func (Gutter) Values() []string {
	return names(GutterNone, GutterS, GutterM, GutterL)
}

// Spacing is a step on the vertical spacing scale used by Box paddings.
type Spacing string

const (
	SpacingNone Spacing = "none"
	SpacingXS   Spacing = "xs"
	SpacingS    Spacing = "s"
	SpacingM    Spacing = "m"
	SpacingL    Spacing = "l"
	SpacingXL   Spacing = "xl"
)

// Values lists the enumeration.
func (Spacing) Values() []string {
	return names(SpacingNone, SpacingXS, SpacingS, SpacingM, SpacingL, SpacingXL)
}

// Tone selects a palette slot for backgrounds and borders.
type Tone string

const (
	ToneNone      Tone = "none"
	TonePrimary   Tone = "primary"
	ToneSecondary Tone = "secondary"
)

// Values lists the enumeration.
func (Tone) Values() []string {
	return names(ToneNone, TonePrimary, ToneSecondary)
}

// Width selects a Container's sizing mode.
type Width string

const (
	WidthFixed Width = "fixed"
	WidthFluid Width = "fluid"
)

// Values lists the enumeration.
func (Width) Values() []string {
	return names(WidthFixed, WidthFluid)
}

// Span is the number of grid columns a Column covers at a breakpoint.
type Span string

const (
	// SpanAuto sizes the column to its content.
	SpanAuto Span = "auto"
	// SpanInherit keeps the span of the next smaller breakpoint.
	SpanInherit Span = "inherit"
)

// GridColumns is the number of columns in the grid.
const GridColumns = 12

// Cols returns the span covering n grid columns.
func Cols(n int) Span {
	return Span(strconv.Itoa(n))
}

func spanValues(extra ...Span) []string {
	out := names(extra...)
	for i := 1; i <= GridColumns; i++ {
		out = append(out, string(Cols(i)))
	}
	return out
}

// FontSize is a step on the type scale.
type FontSize string

const (
	FontSizeXS  FontSize = "xs"
	FontSizeS   FontSize = "s"
	FontSizeM   FontSize = "m"
	FontSizeL   FontSize = "l"
	FontSizeXL  FontSize = "xl"
	FontSizeXXL FontSize = "xxl"
)

// Values lists the full type scale. Paragraph accepts only s, m and l.
func (FontSize) Values() []string {
	return names(FontSizeXS, FontSizeS, FontSizeM, FontSizeL, FontSizeXL, FontSizeXXL)
}

// TextColor selects a text colour.
type TextColor string

const (
	TextColorDefault   TextColor = "default"
	TextColorPrimary   TextColor = "primary"
	TextColorSecondary TextColor = "secondary"
)

// Values lists the enumeration.
func (TextColor) Values() []string {
	return names(TextColorDefault, TextColorPrimary, TextColorSecondary)
}

// LinkType is the visual style of a Link.
type LinkType string

const (
	LinkTypePrimary   LinkType = "primary"
	LinkTypeSecondary LinkType = "secondary"
)

// Values lists the enumeration.
func (LinkType) Values() []string {
	return names(LinkTypePrimary, LinkTypeSecondary)
}

func names[T ~string](values ...T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
