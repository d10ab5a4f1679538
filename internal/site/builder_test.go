package site

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/quill/internal/config"
	"github.com/alexisbeaulieu97/quill/internal/logger"
	"github.com/alexisbeaulieu97/quill/internal/stylesheet"
	"github.com/alexisbeaulieu97/quill/internal/ui/sections"
	"github.com/alexisbeaulieu97/quill/internal/ui/theme"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

func fixedClock() time.Time {
	return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Version: "1.0.0",
		Site: config.Site{
			Title:       "Personal blog",
			Description: "Thoughts on code",
			Logo:        "/images/logo.png",
			Author: config.Author{
				Name:     "Alex Yackovlev",
				Position: "Frontend developer",
				Email:    "someone@example.com",
				Social: []config.SocialLink{
					{Icon: "github", Link: "https://github.com/example"},
				},
			},
		},
		Nav: []config.NavItem{
			{Title: "Blog", Path: "/"},
			{Title: "About", Path: "/about-me/"},
		},
		Pages: []config.Page{
			{Title: "Home", Paragraphs: []config.Paragraph{{Text: "Welcome."}}},
			{Title: "About Me", Bio: true, Paragraphs: []config.Paragraph{{Text: "Hi <there>", FontSize: "l", Bold: true}}},
		},
		Build: config.Build{Parallel: 2},
	}
	cfg.ApplyDefaults()
	return cfg
}

func newTestBuilder(t *testing.T, buf *bytes.Buffer) *Builder {
	t.Helper()

	log, err := logger.New(logger.Options{Level: "debug", Format: logger.FormatJSON, Writer: buf})
	require.NoError(t, err)
	return NewBuilder(Options{Logger: log, Clock: fixedClock, Generator: "quill test"})
}

func parseFile(t *testing.T, path string) *html.Node {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := html.Parse(bytes.NewReader(data))
	require.NoError(t, err)
	return doc
}

func TestBuildWritesSite(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	out := filepath.Join(t.TempDir(), "public")
	res, err := newTestBuilder(t, &logs).Build(context.Background(), testConfig(), out)
	require.NoError(t, err)

	sheet, err := stylesheet.Generate(sections.Registry(), theme.DefaultTheme())
	require.NoError(t, err)
	name := stylesheet.FileName(sheet)

	assert.Equal(t, out, res.OutDir)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, name, res.Stylesheet)
	assert.Equal(t, []string{"about-me/index.html", "index.html", name}, res.Files)
	assert.Positive(t, res.Bytes)

	written, err := os.ReadFile(filepath.Join(out, name))
	require.NoError(t, err)
	assert.Equal(t, sheet, written)

	home := parseFile(t, filepath.Join(out, "index.html"))
	assert.Equal(t, "Personal blog", text(findAll(home, byTag("title"))[0]))
	assert.Equal(t, "/"+name, attr(findAll(home, byTag("link"))[0], "href"))
	assert.Contains(t, text(home), "© 2024, Alex Yackovlev")
	assert.Empty(t, findAll(home, byClass(sections.BlockBio)))

	about := parseFile(t, filepath.Join(out, "about-me", "index.html"))
	assert.Equal(t, "About Me | Personal blog", text(findAll(about, byTag("title"))[0]))
	assert.Len(t, findAll(about, byClass(sections.BlockBio)), 1)
	assert.Contains(t, text(about), "Hi <there>")

	current := findAll(about, func(n *html.Node) bool { return attr(n, "aria-current") == "page" })
	require.Len(t, current, 1)
	assert.Equal(t, "/about-me/", attr(current[0], "href"))

	assert.Contains(t, logs.String(), `"component":"site"`)
	assert.Contains(t, logs.String(), `"slug":"about-me"`)
	assert.Contains(t, logs.String(), "build complete")

	entries, err := os.ReadDir(filepath.Dir(out))
	require.NoError(t, err)
	require.Len(t, entries, 1, "staging directory must not be left behind")
}

func TestBuildIsDeterministic(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var logs bytes.Buffer
	b := newTestBuilder(t, &logs)

	a, err := b.Build(context.Background(), testConfig(), filepath.Join(root, "a"))
	require.NoError(t, err)
	c, err := b.Build(context.Background(), testConfig(), filepath.Join(root, "c"))
	require.NoError(t, err)
	require.Equal(t, a.Files, c.Files)

	for _, f := range a.Files {
		left, err := os.ReadFile(filepath.Join(root, "a", f))
		require.NoError(t, err)
		right, err := os.ReadFile(filepath.Join(root, "c", f))
		require.NoError(t, err)
		assert.Equal(t, left, right, f)
	}
}

func TestBuildReplacesPreviousOutput(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "public")
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "stale.html"), []byte("old"), 0o644))

	var logs bytes.Buffer
	_, err := newTestBuilder(t, &logs).Build(context.Background(), testConfig(), out)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "stale.html"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(out + ".quill-old")
	assert.True(t, os.IsNotExist(err))
}

func TestFailedBuildLeavesOutputUntouched(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	out := filepath.Join(root, "public")
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "index.html"), []byte("previous"), 0o644))

	cfg := testConfig()
	cfg.Site.Author.Social = append(cfg.Site.Author.Social, config.SocialLink{Icon: "mastodon", Link: "https://m.example"})

	var logs bytes.Buffer
	_, err := newTestBuilder(t, &logs).Build(context.Background(), cfg, out)
	require.ErrorIs(t, err, quillerrors.ErrUnknownIcon)

	data, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, logs.String(), "build failed")
}

func TestBuildWithSuppliedStylesheet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sheet, err := stylesheet.Generate(sections.Registry(), theme.DefaultTheme())
	require.NoError(t, err)
	custom := append(bytes.Clone(sheet), []byte("\n.legacy { color: red }\n")...)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.css"), custom, 0o644))

	cfg := testConfig()
	cfg.Build.Stylesheet = "site.css"

	var logs bytes.Buffer
	log, err := logger.New(logger.Options{Format: logger.FormatJSON, Writer: &logs})
	require.NoError(t, err)
	b := NewBuilder(Options{Logger: log, Clock: fixedClock, BaseDir: dir})

	res, err := b.Build(context.Background(), cfg, filepath.Join(dir, "public"))
	require.NoError(t, err)
	assert.Equal(t, stylesheet.FileName(custom), res.Stylesheet)
	assert.Equal(t, []string{"legacy"}, res.ExtraClasses)
	assert.Contains(t, logs.String(), "stylesheet declares unused class")
}

func TestBuildRejectsIncompleteStylesheet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.css"), []byte(".row { display: flex }"), 0o644))

	cfg := testConfig()
	cfg.Build.Stylesheet = "site.css"

	out := filepath.Join(dir, "public")
	_, err := NewBuilder(Options{Clock: fixedClock, BaseDir: dir}).Build(context.Background(), cfg, out)
	require.ErrorIs(t, err, quillerrors.ErrMissingRule)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuildUnderPathPrefix(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Site.BaseURL = "https://example.com/blog/"
	cfg.Build.ExtraStylesheets = []string{"/fonts/awesome.css", "https://cdn.example/x.css"}

	out := filepath.Join(t.TempDir(), "public")
	res, err := NewBuilder(Options{Clock: fixedClock}).Build(context.Background(), cfg, out)
	require.NoError(t, err)

	home := parseFile(t, filepath.Join(out, "index.html"))
	var hrefs []string
	for _, l := range findAll(home, byTag("link")) {
		hrefs = append(hrefs, attr(l, "href"))
	}
	assert.Equal(t, []string{"/blog/" + res.Stylesheet, "/blog/fonts/awesome.css", "https://cdn.example/x.css"}, hrefs)

	nav := findAll(home, byClass(sections.BlockHeaderNav))
	require.Len(t, nav, 1)
	links := findAll(nav[0], byTag("a"))
	require.Len(t, links, 2)
	assert.Equal(t, "/blog/", attr(links[0], "href"))
	assert.Equal(t, "/blog/about-me/", attr(links[1], "href"))

	logos := findAll(home, byClass(sections.BlockFooterLogo))
	require.Len(t, logos, 1)
	assert.Equal(t, "/blog/images/logo.png", attr(logos[0], "src"))
}

func TestBuildRefusesToReplaceSiteDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	siteDir := filepath.Join(root, "mysite")
	require.NoError(t, os.MkdirAll(siteDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, "site.yaml"), []byte("version: \"1.0.0\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, "notes.md"), []byte("keep me"), 0o644))

	tests := []struct {
		name   string
		outCfg string
		outArg string
	}{
		{name: "configured as the site directory", outCfg: "."},
		{name: "configured as a parent directory", outCfg: ".."},
		{name: "argument equal to the site directory", outArg: siteDir},
		{name: "argument with trailing segments", outArg: filepath.Join(siteDir, "public", "..")},
		{name: "argument above the site directory", outArg: root},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Build.OutDir = tt.outCfg
			b := NewBuilder(Options{Clock: fixedClock, BaseDir: siteDir})

			_, err := b.Build(context.Background(), cfg, tt.outArg)
			var validationErr *quillerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "build.out_dir", validationErr.Field)

			_, err = b.Diff(context.Background(), cfg, tt.outArg)
			require.ErrorAs(t, err, &validationErr)
		})
	}

	for _, name := range []string{"site.yaml", "notes.md"} {
		_, err := os.Stat(filepath.Join(siteDir, name))
		require.NoError(t, err, name)
	}
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no staging directory may be created")
	entries, err = os.ReadDir(siteDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestBuildIntoSiteSubdirectory(t *testing.T) {
	t.Parallel()

	siteDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, "site.yaml"), []byte("x"), 0o644))

	cfg := testConfig()
	cfg.Build.OutDir = "public"
	res, err := NewBuilder(Options{Clock: fixedClock, BaseDir: siteDir}).Build(context.Background(), cfg, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(siteDir, "public"), res.OutDir)

	_, err = os.Stat(filepath.Join(siteDir, "site.yaml"))
	require.NoError(t, err)
}

func TestWithin(t *testing.T) {
	t.Parallel()

	assert.True(t, within("/a/b", "/a/b"))
	assert.True(t, within("/a/b/c", "/a/b"))
	assert.True(t, within("/a/b", "/"))
	assert.False(t, within("/a/bc", "/a/b"))
	assert.False(t, within("/a", "/a/b"))
	assert.False(t, within("/a/..b", "/a/b"))
}

func TestCheckWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := testConfig()
	b := NewBuilder(Options{Clock: fixedClock, BaseDir: dir})

	res, err := b.Check(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pages)
	assert.Len(t, res.Files, 3)
	assert.Empty(t, res.OutDir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBuildHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(t.TempDir(), "public")
	_, err := NewBuilder(Options{Clock: fixedClock}).Build(ctx, testConfig(), out)
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestAsset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/blog/logo.png", asset("/blog/", "/logo.png"))
	assert.Equal(t, "/logo.png", asset("/", "/logo.png"))
	assert.Equal(t, "https://cdn/x.png", asset("/blog/", "https://cdn/x.png"))
	assert.Equal(t, "//cdn/x.png", asset("/blog/", "//cdn/x.png"))
	assert.Equal(t, "", asset("/blog/", ""))
	assert.True(t, strings.HasPrefix(asset("/a/", "/b"), "/a/"))
}
