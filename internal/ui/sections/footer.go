package sections

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/quill/internal/ui/components"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// SocialLink is one entry of an author's social profiles.
type SocialLink struct {
	Icon string
	Link string
}

// Author is the site author as supplied by the site configuration.
type Author struct {
	Name     string
	Position string
	Company  string
	Email    string
	Social   []SocialLink
}

// Clock reports the current time.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// Footer is the page footer: brand, author, social links and copyright.
type Footer struct {
	Author      Author
	Description string
	// Logo is the URL of the brand image.
	Logo string
	// Clock supplies the copyright year. Nil means SystemClock.
	Clock Clock
}

// Render renders the footer section.
func (f Footer) Render(ctx components.RenderContext) (*html.Node, error) {
	if strings.TrimSpace(f.Author.Name) == "" {
		return nil, quillerrors.NewRenderError(BlockFooter, fmt.Errorf("author name: %w", quillerrors.ErrMissingInput))
	}
	if strings.TrimSpace(f.Description) == "" {
		return nil, quillerrors.NewRenderError(BlockFooter, fmt.Errorf("description: %w", quillerrors.ErrMissingInput))
	}

	social, err := f.socialLinks()
	if err != nil {
		return nil, quillerrors.NewRenderError(BlockFooter, err)
	}

	clock := f.Clock
	if clock == nil {
		clock = SystemClock
	}

	columns := []components.Node{
		components.NewColumn(components.ColumnProps{XS: components.SpanAuto}, f.brand()),
	}
	if len(social) > 0 {
		columns = append(columns, components.NewColumn(components.ColumnProps{XS: components.SpanAuto}, social...))
	}

	tree := components.Element{
		Tag:   "footer",
		Block: BlockFooter,
		Children: []components.Node{
			components.NewBox(components.BoxProps{PaddingTop: components.SpacingXL, PaddingBottom: components.SpacingM, Background: components.ToneSecondary},
				components.NewContainer(components.ContainerProps{},
					components.NewBox(components.BoxProps{PaddingBottom: components.SpacingM, BorderBottom: components.ToneSecondary, Background: components.ToneNone},
						components.NewRow(components.RowProps{Justify: components.JustifySpaceBetween, AlignItems: components.AlignItemsCenter}, columns...),
					),
					components.NewBox(components.BoxProps{PaddingTop: components.SpacingM, Background: components.ToneNone},
						components.NewTypography(components.TypographyProps{Component: components.TagLabel},
							components.Text(fmt.Sprintf("© %d, %s", clock().Year(), f.Author.Name)),
						),
					),
				),
			),
		},
	}
	return tree.Render(ctx)
}

func (f Footer) brand() components.Node {
	logo := components.NewColumn(components.ColumnProps{XS: components.SpanAuto},
		components.NewLink(components.LinkProps{To: "/"},
			components.Image{Src: f.Logo, Alt: f.Author.Name, Block: BlockFooterLogo},
		),
	)
	about := components.NewColumn(components.ColumnProps{XS: components.SpanAuto},
		components.Element{Tag: "div", Children: []components.Node{
			components.NewTypography(components.TypographyProps{
				Component: components.TagLabel,
				Color:     components.TextColorSecondary,
				IsCaps:    true,
				FontSize:  components.FontSizeXL,
			}, components.Text(f.Author.Name)),
		}},
		components.Element{Tag: "div", Children: []components.Node{
			components.NewTypography(components.TypographyProps{Component: components.TagLabel, FontSize: components.FontSizeS}, components.Text(f.Description)),
		}},
	)
	if f.Logo == "" {
		return components.NewRow(components.RowProps{AlignItems: components.AlignItemsCenter, Paddings: components.GutterS}, about)
	}
	return components.NewRow(components.RowProps{AlignItems: components.AlignItemsCenter, Paddings: components.GutterS}, logo, about)
}

// socialLinks builds one external anchor per social entry, in input order.
func (f Footer) socialLinks() ([]components.Node, error) {
	out := make([]components.Node, 0, len(f.Author.Social))
	seen := make(map[string]struct{}, len(f.Author.Social))
	for _, s := range f.Author.Social {
		if _, dup := seen[s.Icon]; dup {
			return nil, fmt.Errorf("duplicate social icon %q", s.Icon)
		}
		seen[s.Icon] = struct{}{}

		glyph, err := LookupGlyph(s.Icon)
		if err != nil {
			return nil, err
		}
		out = append(out, components.Anchor{
			Href:      s.Link,
			Target:    "_blank",
			Rel:       "noopener noreferrer",
			AriaLabel: f.Author.Name + " " + s.Icon,
			Block:     BlockFooterSocialLink,
			Children: []components.Node{
				components.Element{
					Tag:       "i",
					Block:     BlockFooterSocialIcon,
					ClassName: glyph.ClassName("lg"),
					Attrs:     []html.Attribute{{Key: "aria-hidden", Val: "true"}},
				},
			},
		})
	}
	return out, nil
}
