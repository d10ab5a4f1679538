package sections

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexisbeaulieu97/quill/internal/ui/components"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// Layout is a complete HTML document wrapping header, main content and footer.
type Layout struct {
	Lang        string
	Title       string
	Stylesheets []string
	// Generator, when set, is emitted as <meta name="generator">.
	Generator string

	Header components.Node
	Main   []components.Node
	Footer components.Node
}

// Render renders the document node.
func (l Layout) Render(ctx components.RenderContext) (*html.Node, error) {
	if strings.TrimSpace(l.Title) == "" {
		return nil, quillerrors.NewRenderError(BlockPage, fmt.Errorf("title: %w", quillerrors.ErrMissingInput))
	}
	if len(l.Main) == 0 {
		return nil, quillerrors.NewRenderError(BlockPage, quillerrors.ErrMissingChildren)
	}

	lang := l.Lang
	if lang == "" {
		lang = "en"
	}

	body, err := components.Element{
		Tag:   "body",
		Block: BlockPage,
		Children: []components.Node{
			l.Header,
			components.Element{Tag: "main", Block: BlockPageMain, Children: l.Main},
			l.Footer,
		},
	}.Render(ctx)
	if err != nil {
		return nil, err
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, html.Attribute{Key: "lang", Val: lang})
	root.AppendChild(l.head())
	root.AppendChild(body)
	doc.AppendChild(root)
	return doc, nil
}

func (l Layout) head() *html.Node {
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(element(atom.Meta,
		html.Attribute{Key: "name", Val: "viewport"},
		html.Attribute{Key: "content", Val: "width=device-width, initial-scale=1"},
	))
	if l.Generator != "" {
		head.AppendChild(element(atom.Meta,
			html.Attribute{Key: "name", Val: "generator"},
			html.Attribute{Key: "content", Val: l.Generator},
		))
	}

	title := element(atom.Title)
	title.AppendChild(&html.Node{Type: html.TextNode, Data: l.Title})
	head.AppendChild(title)

	for _, href := range l.Stylesheets {
		head.AppendChild(element(atom.Link,
			html.Attribute{Key: "rel", Val: "stylesheet"},
			html.Attribute{Key: "href", Val: href},
		))
	}
	return head
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a, Attr: attrs}
}
