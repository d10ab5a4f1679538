package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestLinkTypeDefaultsToPrimary(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()

	primary, err := NewLink(LinkProps{To: "/"}, Text("home")).Classes(ctx)
	require.NoError(t, err)
	secondary, err := NewLink(LinkProps{To: "/", Type: LinkTypeSecondary}, Text("home")).Classes(ctx)
	require.NoError(t, err)

	assert.Equal(t, "link_type_primary", primary.String())
	assert.Equal(t, "link_type_secondary", secondary.String())
	for _, c := range secondary.Classes() {
		assert.False(t, primary.Contains(c))
	}
}

func TestLinkPassesAttributesThrough(t *testing.T) {
	t.Parallel()

	out, err := RenderString(DefaultContext(), NewLink(LinkProps{
		To:        "/about/",
		AriaLabel: "About me",
		Attrs:     []html.Attribute{{Key: "data-track", Val: "nav"}},
	}, Text("About")))
	require.NoError(t, err)

	assert.Equal(t, `<a href="/about/" aria-label="About me" data-track="nav" class="link link_type_primary">About</a>`, out)
}

func TestLinkUsesNavigatorFromContext(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithNavigator(PathNavigator{Prefix: "blog"})

	n, err := NewLink(LinkProps{To: "/posts/"}, Text("Posts")).Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/blog/posts/", n.Attr[0].Val)
}

func TestPathNavigator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		to     string
		want   string
	}{
		{name: "no prefix", to: "/about", want: "/about"},
		{name: "prefix root", prefix: "/blog", to: "/", want: "/blog/"},
		{name: "prefix path", prefix: "/blog", to: "/a/b", want: "/blog/a/b"},
		{name: "relative untouched", prefix: "/blog", to: "about", want: "about"},
		{name: "absolute url untouched", prefix: "/blog", to: "https://example.com/", want: "https://example.com/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := PathNavigator{Prefix: tt.prefix}.Anchor(tt.to, nil)
			assert.Equal(t, "a", n.Data)
			assert.Equal(t, tt.want, n.Attr[0].Val)
		})
	}
}

func TestZeroContextFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	out, err := RenderString(RenderContext{}, NewLink(LinkProps{To: "/"}, Text("home")))
	require.NoError(t, err)
	assert.Equal(t, `<a href="/" class="link link_type_primary">home</a>`, out)
}

func TestElementHelpers(t *testing.T) {
	t.Parallel()

	out, err := RenderString(DefaultContext(), Element{
		Tag: "footer",
		Children: []Node{
			Anchor{Href: "https://x", Target: "_blank", Rel: "noopener noreferrer", Children: []Node{Text("x")}},
			Image{Src: "/logo.png", Alt: "Logo"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, `<footer><a href="https://x" target="_blank" rel="noopener noreferrer">x</a><img src="/logo.png" alt="Logo"/></footer>`, out)
}
