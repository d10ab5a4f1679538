package components

import (
	"path"
	"strings"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/quill/internal/ui/style"
)

// Navigator is the navigation collaborator: it turns a site-relative
// destination into an anchor element. Link only adds presentation classes
// and children to what the navigator returns.
type Navigator interface {
	Anchor(to string, attrs []html.Attribute) *html.Node
}

// PathNavigator resolves destinations against a path prefix.
type PathNavigator struct {
	Prefix string
}

// Anchor builds an <a> whose href is the destination under the prefix.
func (p PathNavigator) Anchor(to string, attrs []html.Attribute) *html.Node {
	href := to
	if p.Prefix != "" && strings.HasPrefix(to, "/") {
		href = path.Join("/", p.Prefix, to)
		if strings.HasSuffix(to, "/") && !strings.HasSuffix(href, "/") {
			href += "/"
		}
	}
	out := make([]html.Attribute, 0, len(attrs)+1)
	out = append(out, html.Attribute{Key: "href", Val: href})
	out = append(out, attrs...)
	return newElement("a", out...)
}

// LinkProps configures a Link. Everything except Type is handed to the
// navigator unmodified.
type LinkProps struct {
	Type      LinkType
	To        string
	Target    string
	Rel       string
	AriaLabel string
	Title     string
	// Attrs are additional attributes passed through verbatim.
	Attrs []html.Attribute
}

func (p LinkProps) variants() style.Values {
	return style.Values{"type": string(p.Type)}
}

func (p LinkProps) passThrough() []html.Attribute {
	var attrs []html.Attribute
	attrs = attrIf(attrs, "target", p.Target)
	attrs = attrIf(attrs, "rel", p.Rel)
	attrs = attrIf(attrs, "aria-label", p.AriaLabel)
	attrs = attrIf(attrs, "title", p.Title)
	return append(attrs, p.Attrs...)
}

// Link is an internal navigation link.
type Link struct {
	props    LinkProps
	children []Node
}

// NewLink creates a link around its content.
func NewLink(props LinkProps, children ...Node) *Link {
	return &Link{props: props, children: children}
}

// Classes resolves the link's style set without rendering it.
func (l *Link) Classes(ctx RenderContext) (style.ClassSet, error) {
	return ctx.registry().Resolve(BlockLink, l.props.variants())
}

// Render renders the anchor produced by the navigator with link classes.
func (l *Link) Render(ctx RenderContext) (*html.Node, error) {
	if err := requireChildren(BlockLink, l.children); err != nil {
		return nil, err
	}
	classes, err := classesFor(ctx, BlockLink, l.props.variants(), "")
	if err != nil {
		return nil, err
	}
	n := ctx.navigator().Anchor(l.props.To, l.props.passThrough())
	setAttr(n, "class", classes.String())
	if err := appendChildren(ctx, n, l.children); err != nil {
		return nil, err
	}
	return n, nil
}
