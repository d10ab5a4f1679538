// Package components provides the declarative, prop-driven component library
// the blog pages are composed from.
//
// # Overview
//
// Components render to golang.org/x/net/html node trees. Each primitive owns a
// fixed option schema and asks the style registry to turn its typed props
// into a composed set of class names. The stylesheet is generated from the
// same registry, so every class a component can emit has a rule.
//
// # Architecture
//
// The component system has three layers:
//
//  1. Style Layer - immutable schemas and the resolver (package style)
//  2. Primitive Layer - layout and content primitives that resolve props to classes
//  3. Section Layer - composite page sections bound to site data (package sections)
//
// # Render Context
//
// The registry and the navigation collaborator are passed explicitly through
// RenderContext, eliminating global state:
//
//	ctx := components.DefaultContext().WithNavigator(components.PathNavigator{Prefix: "/blog"})
//	node, err := row.Render(ctx)
//
// # Core Components
//
// Layout primitives:
//   - Container: centred page-width wrapper
//   - Row: flex row with alignment, justification, gutters and wrapping
//   - Column: grid column with per-breakpoint spans
//   - Box: region with vertical paddings, background and bottom border
//
// Content primitives:
//   - Typography: text with size, colour, casing and weight
//   - Paragraph: body paragraph with size and weight
//   - Link: internal navigation link in a primary or secondary style
//
// Structural helpers without variant options: Text, Element, Anchor, Image.
//
// # Type Safety
//
// Props use typed enums instead of magic strings. The zero value of each enum
// means "omitted" and selects the declared default:
//
//	AlignItems:  AlignItemsCenter, AlignItemsStretch, etc.
//	Justify:     JustifySpaceBetween, JustifyEnd, etc.
//	Spacing:     SpacingXS ... SpacingXL
//	FontSize:    FontSizeXS ... FontSizeXXL
//	LinkType:    LinkTypePrimary, LinkTypeSecondary
//
// A value outside an option's enumeration fails the render with a
// StyleError, so a broken page fails the build instead of shipping unstyled.
//
// # Composition
//
//	footer := NewBox(BoxProps{PaddingTop: SpacingXL, Background: ToneSecondary},
//		NewContainer(ContainerProps{},
//			NewRow(RowProps{Justify: JustifySpaceBetween, AlignItems: AlignItemsCenter},
//				NewColumn(ColumnProps{XS: SpanAuto}, Text("left")),
//				NewColumn(ColumnProps{XS: SpanAuto}, Text("right")),
//			),
//		),
//	)
//
// Rendering is stateless and deterministic; sibling subtrees share nothing
// mutable and may be rendered concurrently.
package components
