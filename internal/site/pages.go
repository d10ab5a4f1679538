package site

import (
	"path"
	"strings"

	"github.com/alexisbeaulieu97/quill/internal/config"
	"github.com/alexisbeaulieu97/quill/internal/ui/components"
	"github.com/alexisbeaulieu97/quill/internal/ui/sections"
)

// page is one document scheduled for rendering.
type page struct {
	slug   string
	file   string
	route  string
	layout sections.Layout
}

// plan composes every page of cfg. Rendering happens later and concurrently;
// plan itself only assembles component trees.
func (b *Builder) plan(cfg *config.Config, stylesheets []string, generator string) []page {
	author := sectionAuthor(cfg.Site.Author)
	prefix := cfg.Site.PathPrefix()
	index := cfg.IndexPage()

	nav := make([]sections.NavItem, len(cfg.Nav))
	for i, item := range cfg.Nav {
		nav[i] = sections.NavItem{Title: item.Title, Path: item.Path}
	}

	pages := make([]page, len(cfg.Pages))
	for i, p := range cfg.Pages {
		slug := p.ResolvedSlug()
		route, file := "/"+slug+"/", path.Join(slug, "index.html")
		title := p.Title + " | " + cfg.Site.Title
		if i == index {
			route, file, title = "/", "index.html", cfg.Site.Title
		}

		pages[i] = page{
			slug:  slug,
			file:  file,
			route: route,
			layout: sections.Layout{
				Lang:        cfg.Site.Lang,
				Title:       title,
				Stylesheets: stylesheets,
				Generator:   generator,
				Header: sections.Header{
					Title:  cfg.Site.Title,
					Logo:   asset(prefix, cfg.Site.Logo),
					Nav:    nav,
					Active: route,
				},
				Main: []components.Node{b.body(p, author)},
				Footer: sections.Footer{
					Author:      author,
					Description: cfg.Site.Description,
					Logo:        asset(prefix, cfg.Site.Logo),
					Clock:       b.clock,
				},
			},
		}
	}
	return pages
}

func (b *Builder) body(p config.Page, author sections.Author) components.Node {
	children := []components.Node{
		components.NewTypography(components.TypographyProps{
			Component: components.TagH1,
			FontSize:  components.FontSizeXXL,
			IsBold:    true,
		}, components.Text(p.Title)),
	}
	if p.Description != "" {
		children = append(children, components.NewParagraph(components.ParagraphProps{
			FontSize: components.FontSizeL,
		}, components.Text(p.Description)))
	}
	for _, para := range p.Paragraphs {
		children = append(children, components.NewParagraph(components.ParagraphProps{
			FontSize: components.FontSize(para.FontSize),
			IsBold:   para.Bold,
		}, components.Text(para.Text)))
	}
	if p.Bio {
		children = append(children, sections.Bio{Author: author})
	}

	return components.NewBox(components.BoxProps{
		PaddingTop:    components.SpacingL,
		PaddingBottom: components.SpacingL,
	}, components.NewContainer(components.ContainerProps{}, children...))
}

func sectionAuthor(a config.Author) sections.Author {
	social := make([]sections.SocialLink, len(a.Social))
	for i, s := range a.Social {
		social[i] = sections.SocialLink{Icon: s.Icon, Link: s.Link}
	}
	return sections.Author{
		Name:     a.Name,
		Position: a.Position,
		Company:  a.Company,
		Email:    a.Email,
		Social:   social,
	}
}

// asset places a root-relative asset path under the site prefix. Absolute
// URLs and relative paths are returned unchanged.
func asset(prefix, p string) string {
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return p
	}
	return path.Join(prefix, p)
}
