package components

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexisbeaulieu97/quill/internal/ui/style"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// Node is anything that renders into an HTML node tree.
type Node interface {
	Render(ctx RenderContext) (*html.Node, error)
}

// NodeFunc adapts a function to the Node interface.
type NodeFunc func(ctx RenderContext) (*html.Node, error)

// Render calls f(ctx).
func (f NodeFunc) Render(ctx RenderContext) (*html.Node, error) {
	return f(ctx)
}

// RenderContext provides the style registry and navigation collaborator to
// components during rendering. The zero value falls back to the defaults.
type RenderContext struct {
	Registry  *style.Registry
	Navigator Navigator
}

// DefaultContext returns a render context with the primitive registry and
// root-relative navigation.
func DefaultContext() RenderContext {
	return RenderContext{
		Registry:  DefaultRegistry(),
		Navigator: PathNavigator{},
	}
}

// WithRegistry returns a new context with the specified registry.
func (r RenderContext) WithRegistry(reg *style.Registry) RenderContext {
	r.Registry = reg
	return r
}

// WithNavigator returns a new context with the specified navigator.
func (r RenderContext) WithNavigator(nav Navigator) RenderContext {
	r.Navigator = nav
	return r
}

func (r RenderContext) registry() *style.Registry {
	if r.Registry == nil {
		return DefaultRegistry()
	}
	return r.Registry
}

func (r RenderContext) navigator() Navigator {
	if r.Navigator == nil {
		return PathNavigator{}
	}
	return r.Navigator
}

// classesFor composes the class attribute of a block element: base class,
// resolved option identifiers, then caller supplied tokens.
func classesFor(ctx RenderContext, block string, values style.Values, className string) (style.ClassSet, error) {
	resolved, err := ctx.registry().Resolve(block, values)
	if err != nil {
		return style.ClassSet{}, err
	}
	set := style.NewClassSet(style.Class(block)).Union(resolved)
	set.AddTokens(className)
	return set, nil
}

func newElement(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func attrIf(attrs []html.Attribute, key, val string) []html.Attribute {
	if val == "" {
		return attrs
	}
	return append(attrs, html.Attribute{Key: key, Val: val})
}

func requireChildren(component string, children []Node) error {
	for _, child := range children {
		if child != nil {
			return nil
		}
	}
	return quillerrors.NewRenderError(component, quillerrors.ErrMissingChildren)
}

// appendChildren renders children in order and appends them to parent.
// Children are passed through untouched; nil entries are skipped.
func appendChildren(ctx RenderContext, parent *html.Node, children []Node) error {
	for _, child := range children {
		if child == nil {
			continue
		}
		n, err := child.Render(ctx)
		if err != nil {
			return err
		}
		if n == nil {
			continue
		}
		if n.Type == html.DocumentNode {
			return fmt.Errorf("cannot nest a document inside <%s>", parent.Data)
		}
		parent.AppendChild(n)
	}
	return nil
}

// styledElement renders a block element: tag, composed classes, extra
// attributes and children.
func styledElement(ctx RenderContext, tag, block string, values style.Values, className string, attrs []html.Attribute, children []Node) (*html.Node, error) {
	classes, err := classesFor(ctx, block, values, className)
	if err != nil {
		return nil, err
	}
	n := newElement(tag, attrs...)
	if classes.Len() > 0 {
		setAttr(n, "class", classes.String())
	}
	if err := appendChildren(ctx, n, children); err != nil {
		return nil, err
	}
	return n, nil
}

// Render writes the HTML serialisation of node to w.
func Render(ctx RenderContext, node Node, w io.Writer) error {
	n, err := node.Render(ctx)
	if err != nil {
		return err
	}
	return html.Render(w, n)
}

// RenderString renders node to a string.
func RenderString(ctx RenderContext, node Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(ctx, node, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ClassList splits an element's class attribute.
func ClassList(n *html.Node) []string {
	for _, a := range n.Attr {
		if a.Key == "class" {
			return strings.Fields(a.Val)
		}
	}
	return nil
}
