package components

import (
	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/quill/internal/ui/style"
)

// BoxProps configures a Box.
type BoxProps struct {
	PaddingTop    Spacing
	PaddingBottom Spacing
	Background    Tone
	BorderBottom  Tone
}

func (p BoxProps) variants() style.Values {
	return style.Values{
		"paddingTop":    string(p.PaddingTop),
		"paddingBottom": string(p.PaddingBottom),
		"background":    string(p.Background),
		"borderBottom":  string(p.BorderBottom),
	}
}

// Box is a full-width region with vertical paddings, a background and an
// optional bottom border.
type Box struct {
	props    BoxProps
	children []Node
}

// NewBox creates a box around one or more children.
func NewBox(props BoxProps, children ...Node) *Box {
	return &Box{props: props, children: children}
}

// Render renders the box and its children.
func (b *Box) Render(ctx RenderContext) (*html.Node, error) {
	if err := requireChildren(BlockBox, b.children); err != nil {
		return nil, err
	}
	return styledElement(ctx, "div", BlockBox, b.props.variants(), "", nil, b.children)
}
