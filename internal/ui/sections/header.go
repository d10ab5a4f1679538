package sections

import (
	"fmt"
	"path"
	"strings"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/quill/internal/ui/components"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// NavItem is one primary navigation entry.
type NavItem struct {
	Title string
	Path  string
}

// Header is the page header: brand link and primary navigation.
type Header struct {
	Title string
	Logo  string
	Nav   []NavItem
	// Active is the path of the current page; its nav entry is highlighted.
	Active string
}

// Render renders the header section.
func (h Header) Render(ctx components.RenderContext) (*html.Node, error) {
	if strings.TrimSpace(h.Title) == "" {
		return nil, quillerrors.NewRenderError(BlockHeader, fmt.Errorf("title: %w", quillerrors.ErrMissingInput))
	}

	brand := []components.Node{}
	if h.Logo != "" {
		brand = append(brand, components.Image{Src: h.Logo, Alt: h.Title, Block: BlockHeaderLogo})
	}
	brand = append(brand, components.NewTypography(components.TypographyProps{
		FontSize: components.FontSizeL,
		IsBold:   true,
	}, components.Text(h.Title)))

	columns := []components.Node{
		components.NewColumn(components.ColumnProps{XS: components.SpanAuto},
			components.NewLink(components.LinkProps{To: "/", AriaLabel: h.Title}, brand...),
		),
	}
	if len(h.Nav) > 0 {
		columns = append(columns, components.NewColumn(components.ColumnProps{XS: components.SpanAuto}, h.nav()))
	}

	return components.Element{
		Tag:   "header",
		Block: BlockHeader,
		Children: []components.Node{
			components.NewBox(components.BoxProps{
				PaddingTop:    components.SpacingM,
				PaddingBottom: components.SpacingM,
				BorderBottom:  components.TonePrimary,
			},
				components.NewContainer(components.ContainerProps{},
					components.NewRow(components.RowProps{
						Justify:    components.JustifySpaceBetween,
						AlignItems: components.AlignItemsCenter,
						IsWrap:     true,
					}, columns...),
				),
			),
		},
	}.Render(ctx)
}

func (h Header) nav() components.Node {
	items := make([]components.Node, 0, len(h.Nav))
	for _, item := range h.Nav {
		props := components.LinkProps{To: item.Path, Type: components.LinkTypeSecondary}
		if sameRoute(item.Path, h.Active) {
			props.Type = components.LinkTypePrimary
			props.Attrs = []html.Attribute{{Key: "aria-current", Val: "page"}}
		}
		items = append(items, components.NewLink(props, components.Text(item.Title)))
	}
	return components.Element{Tag: "nav", Block: BlockHeaderNav, Children: items}
}

// sameRoute compares two site paths ignoring a trailing slash and dot
// segments, so /about and /about/ name the same page.
func sameRoute(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	return path.Clean("/"+a) == path.Clean("/"+b)
}
