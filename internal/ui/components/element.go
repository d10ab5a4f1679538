package components

import (
	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/quill/internal/ui/style"
)

// Element is a plain element with an optional style block. Blocks used here
// declare no options, so the element only carries its base class.
type Element struct {
	Tag   string
	Block string
	// ClassName is merged after the block class, e.g. for classes owned by an
	// external stylesheet.
	ClassName string
	Attrs     []html.Attribute
	Children  []Node
}

// Render renders the element and its children.
func (e Element) Render(ctx RenderContext) (*html.Node, error) {
	if e.Block == "" {
		n := newElement(e.Tag, e.Attrs...)
		if e.ClassName != "" {
			var set style.ClassSet
			set.AddTokens(e.ClassName)
			setAttr(n, "class", set.String())
		}
		if err := appendChildren(ctx, n, e.Children); err != nil {
			return nil, err
		}
		return n, nil
	}
	return styledElement(ctx, e.Tag, e.Block, nil, e.ClassName, e.Attrs, e.Children)
}

// Anchor is an external hyperlink that bypasses the navigator.
type Anchor struct {
	Href      string
	Target    string
	Rel       string
	AriaLabel string
	Block     string
	Children  []Node
}

// Render renders the anchor.
func (a Anchor) Render(ctx RenderContext) (*html.Node, error) {
	attrs := []html.Attribute{{Key: "href", Val: a.Href}}
	attrs = attrIf(attrs, "target", a.Target)
	attrs = attrIf(attrs, "rel", a.Rel)
	attrs = attrIf(attrs, "aria-label", a.AriaLabel)
	return Element{Tag: "a", Block: a.Block, Attrs: attrs, Children: a.Children}.Render(ctx)
}

// Image is an <img> whose source is an opaque asset URL.
type Image struct {
	Src   string
	Alt   string
	Block string
}

// Render renders the image.
func (i Image) Render(ctx RenderContext) (*html.Node, error) {
	attrs := []html.Attribute{{Key: "src", Val: i.Src}, {Key: "alt", Val: i.Alt}}
	return Element{Tag: "img", Block: i.Block, Attrs: attrs}.Render(ctx)
}
