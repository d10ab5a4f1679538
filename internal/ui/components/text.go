package components

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/quill/internal/ui/style"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// Text is a raw text node. Escaping happens at serialisation.
type Text string

// Render renders the text node.
func (t Text) Render(RenderContext) (*html.Node, error) {
	return &html.Node{Type: html.TextNode, Data: string(t)}, nil
}

// Tag is the element a Typography renders as.
type Tag string

const (
	TagSpan  Tag = "span"
	TagLabel Tag = "label"
	TagDiv   Tag = "div"
	TagH1    Tag = "h1"
	TagH2    Tag = "h2"
	TagH3    Tag = "h3"
	TagH4    Tag = "h4"
	TagH5    Tag = "h5"
	TagH6    Tag = "h6"
)

var typographyTags = map[Tag]struct{}{
	TagSpan: {}, TagLabel: {}, TagDiv: {},
	TagH1: {}, TagH2: {}, TagH3: {}, TagH4: {}, TagH5: {}, TagH6: {},
}

// TypographyProps configures a Typography. Component defaults to span.
type TypographyProps struct {
	Component Tag
	FontSize  FontSize
	Color     TextColor
	IsCaps    bool
	IsBold    bool
	// ClassName is merged after the resolved classes.
	ClassName string
}

func (p TypographyProps) variants() style.Values {
	return style.Values{
		"fontSize": string(p.FontSize),
		"color":    string(p.Color),
		"isCaps":   style.Flag(p.IsCaps),
		"isBold":   style.Flag(p.IsBold),
	}
}

// Typography renders text with a size, colour, casing and weight.
type Typography struct {
	props    TypographyProps
	children []Node
}

// NewTypography creates a typography element around its content.
func NewTypography(props TypographyProps, children ...Node) *Typography {
	return &Typography{props: props, children: children}
}

// Classes resolves the typography's style set without rendering it.
func (t *Typography) Classes(ctx RenderContext) (style.ClassSet, error) {
	return ctx.registry().Resolve(BlockTypography, t.props.variants())
}

// Render renders the typography element.
func (t *Typography) Render(ctx RenderContext) (*html.Node, error) {
	if err := requireChildren(BlockTypography, t.children); err != nil {
		return nil, err
	}
	tag := t.props.Component
	if tag == "" {
		tag = TagSpan
	}
	if _, ok := typographyTags[tag]; !ok {
		return nil, quillerrors.NewRenderError(BlockTypography, fmt.Errorf("unsupported component %q", tag))
	}
	return styledElement(ctx, string(tag), BlockTypography, t.props.variants(), t.props.ClassName, nil, t.children)
}

// ParagraphProps configures a Paragraph. FontSize accepts s, m and l.
type ParagraphProps struct {
	FontSize FontSize
	IsBold   bool
	// ClassName is merged after the resolved classes.
	ClassName string
}

func (p ParagraphProps) variants() style.Values {
	return style.Values{
		"fontSize": string(p.FontSize),
		"isBold":   style.Flag(p.IsBold),
	}
}

// Paragraph is a body text paragraph.
type Paragraph struct {
	props    ParagraphProps
	children []Node
}

// NewParagraph creates a paragraph around its content.
func NewParagraph(props ParagraphProps, children ...Node) *Paragraph {
	return &Paragraph{props: props, children: children}
}

// Classes resolves the paragraph's style set without rendering it.
func (p *Paragraph) Classes(ctx RenderContext) (style.ClassSet, error) {
	return ctx.registry().Resolve(BlockParagraph, p.props.variants())
}

// Render renders the paragraph.
func (p *Paragraph) Render(ctx RenderContext) (*html.Node, error) {
	if err := requireChildren(BlockParagraph, p.children); err != nil {
		return nil, err
	}
	return styledElement(ctx, "p", BlockParagraph, p.props.variants(), p.props.ClassName, nil, p.children)
}
