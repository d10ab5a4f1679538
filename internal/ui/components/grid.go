package components

import (
	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/quill/internal/ui/style"
)

// RowProps configures a Row. Zero fields take the schema defaults:
// flex alignment, start justification, no gutters, no wrapping.
type RowProps struct {
	AlignItems AlignItems
	Justify    Justify
	Paddings   Gutter
	IsWrap     bool
}

func (p RowProps) variants() style.Values {
	return style.Values{
		"alignItems": string(p.AlignItems),
		"justify":    string(p.Justify),
		"paddings":   string(p.Paddings),
		"isWrap":     style.Flag(p.IsWrap),
	}
}

// Row is a layout component that arranges its columns horizontally.
type Row struct {
	props    RowProps
	children []Node
}

// NewRow creates a row holding the given children.
func NewRow(props RowProps, children ...Node) *Row {
	return &Row{props: props, children: children}
}

// Classes resolves the row's style set without rendering it.
func (r *Row) Classes(ctx RenderContext) (style.ClassSet, error) {
	return ctx.registry().Resolve(BlockRow, r.props.variants())
}

// Render renders the row and its children.
func (r *Row) Render(ctx RenderContext) (*html.Node, error) {
	if err := requireChildren(BlockRow, r.children); err != nil {
		return nil, err
	}
	return styledElement(ctx, "div", BlockRow, r.props.variants(), "", nil, r.children)
}

// ColumnProps configures a Column's span per breakpoint. XS defaults to the
// full grid width; MD and LG default to inheriting the smaller breakpoint.
type ColumnProps struct {
	XS Span
	MD Span
	LG Span
}

func (p ColumnProps) variants() style.Values {
	return style.Values{
		"xs": string(p.XS),
		"md": string(p.MD),
		"lg": string(p.LG),
	}
}

// Column is a grid cell inside a Row.
type Column struct {
	props    ColumnProps
	children []Node
}

// NewColumn creates a column holding the given children.
func NewColumn(props ColumnProps, children ...Node) *Column {
	return &Column{props: props, children: children}
}

// Render renders the column and its children.
func (c *Column) Render(ctx RenderContext) (*html.Node, error) {
	if err := requireChildren(BlockColumn, c.children); err != nil {
		return nil, err
	}
	return styledElement(ctx, "div", BlockColumn, c.props.variants(), "", nil, c.children)
}
