package sections

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/quill/internal/ui/components"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// Bio introduces the author: name, role and contact.
type Bio struct {
	Author Author
}

// Role formats "position at company", tolerating either part missing.
func (a Author) Role() string {
	switch {
	case a.Position != "" && a.Company != "":
		return a.Position + " at " + a.Company
	case a.Position != "":
		return a.Position
	default:
		return a.Company
	}
}

// Render renders the bio section.
func (b Bio) Render(ctx components.RenderContext) (*html.Node, error) {
	if strings.TrimSpace(b.Author.Name) == "" {
		return nil, quillerrors.NewRenderError(BlockBio, fmt.Errorf("author name: %w", quillerrors.ErrMissingInput))
	}

	content := []components.Node{
		components.NewTypography(components.TypographyProps{
			Component: components.TagH2,
			FontSize:  components.FontSizeXL,
			IsBold:    true,
		}, components.Text(b.Author.Name)),
	}
	if role := b.Author.Role(); role != "" {
		content = append(content, components.NewParagraph(components.ParagraphProps{FontSize: components.FontSizeS}, components.Text(role)))
	}
	if b.Author.Email != "" {
		content = append(content, components.NewParagraph(components.ParagraphProps{FontSize: components.FontSizeS},
			components.Anchor{
				Href:     "mailto:" + b.Author.Email,
				Block:    BlockBioEmail,
				Children: []components.Node{components.Text(b.Author.Email)},
			},
		))
	}

	return components.Element{
		Tag:   "section",
		Block: BlockBio,
		Children: []components.Node{
			components.NewBox(components.BoxProps{PaddingTop: components.SpacingL, PaddingBottom: components.SpacingL},
				components.NewContainer(components.ContainerProps{}, content...),
			),
		},
	}.Render(ctx)
}
