package components

import (
	"github.com/alexisbeaulieu97/quill/internal/ui/style"
)

// Style blocks declared by the primitives.
const (
	BlockContainer  = "container"
	BlockRow        = "row"
	BlockColumn     = "column"
	BlockBox        = "box"
	BlockTypography = "typography"
	BlockParagraph  = "paragraph"
	BlockLink       = "link"
)

var defaultRegistry = style.MustRegistry(Schemas()...)

// DefaultRegistry returns the process-wide registry of primitive schemas.
func DefaultRegistry() *style.Registry {
	return defaultRegistry
}

// Schemas returns a fresh copy of every primitive's option schema.
func Schemas() []style.Schema {
	return []style.Schema{
		containerSchema(),
		rowSchema(),
		columnSchema(),
		boxSchema(),
		typographySchema(),
		paragraphSchema(),
		linkSchema(),
	}
}

func containerSchema() style.Schema {
	return style.Schema{
		Block: BlockContainer,
		Options: []style.Option{
			{Name: "width", Default: string(WidthFixed), Values: Width("").Values()},
		},
	}
}

func rowSchema() style.Schema {
	return style.Schema{
		Block: BlockRow,
		Options: []style.Option{
			{Name: "alignItems", Default: string(AlignItemsFlex), Values: AlignItems("").Values()},
			{Name: "justify", Default: string(JustifyStart), Values: Justify("").Values()},
			{Name: "paddings", Default: string(GutterNone), Values: Gutter("").Values()},
			{Name: "isWrap", Key: "wrap", Flag: true},
		},
	}
}

func columnSchema() style.Schema {
	return style.Schema{
		Block: BlockColumn,
		Options: []style.Option{
			{Name: "xs", Default: string(Cols(GridColumns)), Values: spanValues(SpanAuto)},
			{Name: "md", Default: string(SpanInherit), Values: spanValues(SpanInherit, SpanAuto)},
			{Name: "lg", Default: string(SpanInherit), Values: spanValues(SpanInherit, SpanAuto)},
		},
	}
}

func boxSchema() style.Schema {
	return style.Schema{
		Block: BlockBox,
		Options: []style.Option{
			{Name: "paddingTop", Default: string(SpacingNone), Values: Spacing("").Values()},
			{Name: "paddingBottom", Default: string(SpacingNone), Values: Spacing("").Values()},
			{Name: "background", Default: string(ToneNone), Values: Tone("").Values()},
			{Name: "borderBottom", Default: string(ToneNone), Values: Tone("").Values()},
		},
	}
}

func typographySchema() style.Schema {
	return style.Schema{
		Block: BlockTypography,
		Options: []style.Option{
			{Name: "fontSize", Key: "font", Default: string(FontSizeM), Values: FontSize("").Values()},
			{Name: "color", Default: string(TextColorDefault), Values: TextColor("").Values()},
			{Name: "isCaps", Key: "caps", Flag: true},
			{Name: "isBold", Key: "bold", Flag: true},
		},
	}
}

func paragraphSchema() style.Schema {
	return style.Schema{
		Block: BlockParagraph,
		Options: []style.Option{
			{Name: "fontSize", Key: "font", Default: string(FontSizeM), Values: names(FontSizeS, FontSizeM, FontSizeL)},
			{Name: "isBold", Key: "bold", Flag: true},
		},
	}
}

func linkSchema() style.Schema {
	return style.Schema{
		Block: BlockLink,
		Options: []style.Option{
			{Name: "type", Default: string(LinkTypePrimary), Values: LinkType("").Values()},
		},
	}
}
