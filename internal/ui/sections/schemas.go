// Package sections assembles primitives into page sections bound to site data:
// the footer, header, author bio and the document layout around them.
package sections

import (
	"github.com/alexisbeaulieu97/quill/internal/ui/components"
	"github.com/alexisbeaulieu97/quill/internal/ui/style"
)

// Style blocks owned by sections. They declare no options; each contributes
// its base class only.
const (
	BlockPage             = "page"
	BlockPageMain         = "page_main"
	BlockFooter           = "footer"
	BlockFooterLogo       = "footer_logo"
	BlockFooterSocialLink = "footer_socialLink"
	BlockFooterSocialIcon = "footer_socialIcon"
	BlockHeader           = "header"
	BlockHeaderLogo       = "header_logo"
	BlockHeaderNav        = "header_nav"
	BlockBio              = "bio"
	BlockBioEmail         = "bio_email"
)

var registry = style.MustRegistry(append(components.Schemas(), Schemas()...)...)

// Schemas returns the section part schemas.
func Schemas() []style.Schema {
	blocks := []string{
		BlockPage, BlockPageMain,
		BlockFooter, BlockFooterLogo, BlockFooterSocialLink, BlockFooterSocialIcon,
		BlockHeader, BlockHeaderLogo, BlockHeaderNav,
		BlockBio, BlockBioEmail,
	}
	out := make([]style.Schema, len(blocks))
	for i, b := range blocks {
		out[i] = style.Schema{Block: b}
	}
	return out
}

// Registry returns the process-wide registry holding primitive and section
// schemas. Pages and the stylesheet are built against it.
func Registry() *style.Registry {
	return registry
}

// DefaultContext returns a render context backed by Registry.
func DefaultContext() components.RenderContext {
	return components.DefaultContext().WithRegistry(registry)
}
