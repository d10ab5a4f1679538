package components

import (
	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/quill/internal/ui/style"
)

// ContainerProps configures a Container.
type ContainerProps struct {
	Width Width
}

func (p ContainerProps) variants() style.Values {
	return style.Values{"width": string(p.Width)}
}

// Container is the centred page-width wrapper every section sits in.
type Container struct {
	props    ContainerProps
	children []Node
}

// NewContainer creates a container around one or more children.
func NewContainer(props ContainerProps, children ...Node) *Container {
	return &Container{props: props, children: children}
}

// Render renders the container and its children.
func (c *Container) Render(ctx RenderContext) (*html.Node, error) {
	if err := requireChildren(BlockContainer, c.children); err != nil {
		return nil, err
	}
	return styledElement(ctx, "div", BlockContainer, c.props.variants(), "", nil, c.children)
}
