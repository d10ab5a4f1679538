package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

func validConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Site: Site{
			Title:       "Blog",
			Description: "Thoughts on code",
			Author: Author{
				Name: "Alex Yackovlev",
				Social: []SocialLink{
					{Icon: "github", Link: "https://github.com/example"},
				},
			},
		},
		Nav: []NavItem{{Title: "Blog", Path: "/"}},
		Pages: []Page{
			{Title: "Home", Slug: "index", Paragraphs: []Paragraph{{Text: "hi"}}},
		},
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		message string
	}{
		{
			name:   "missing author name",
			mutate: func(c *Config) { c.Site.Author.Name = "" },
			field:  "site.author.name",
		},
		{
			name:   "missing description",
			mutate: func(c *Config) { c.Site.Description = "" },
			field:  "site.description",
		},
		{
			name: "unknown icon",
			mutate: func(c *Config) {
				c.Site.Author.Social = append(c.Site.Author.Social, SocialLink{Icon: "mastodon", Link: "https://m.example"})
			},
			field:   "site.author.social[1].icon",
			message: "tag 'icon'",
		},
		{
			name: "duplicate icon",
			mutate: func(c *Config) {
				c.Site.Author.Social = append(c.Site.Author.Social, SocialLink{Icon: "github", Link: "https://other.example"})
			},
			field:   "site.author.social",
			message: "duplicate entries",
		},
		{
			name:   "social link must be a url",
			mutate: func(c *Config) { c.Site.Author.Social[0].Link = "github.com/example" },
			field:  "site.author.social[0].link",
		},
		{
			name:   "invalid email",
			mutate: func(c *Config) { c.Site.Author.Email = "nope" },
			field:  "site.author.email",
		},
		{
			name:   "nav path must be absolute",
			mutate: func(c *Config) { c.Nav[0].Path = "about" },
			field:  "nav[0].path",
		},
		{
			name:   "duplicate nav path",
			mutate: func(c *Config) { c.Nav = append(c.Nav, NavItem{Title: "Home", Path: "/"}) },
			field:  "nav[1].path",
		},
		{
			name:   "nav path differing only by trailing slash",
			mutate: func(c *Config) { c.Nav = append(c.Nav, NavItem{Title: "About", Path: "/about"}, NavItem{Title: "Me", Path: "/about/"}) },
			field:  "nav[2].path",
		},
		{
			name:   "malformed slug",
			mutate: func(c *Config) { c.Pages[0].Slug = "Not A Slug" },
			field:  "pages[0].slug",
		},
		{
			name: "duplicate slug",
			mutate: func(c *Config) {
				c.Pages = append(c.Pages, Page{Title: "Index", Paragraphs: []Paragraph{{Text: "x"}}})
			},
			field:   "pages[1].slug",
			message: `duplicate slug "index"`,
		},
		{
			name: "title without slug characters",
			mutate: func(c *Config) {
				c.Pages = append(c.Pages, Page{Title: "???", Paragraphs: []Paragraph{{Text: "x"}}})
			},
			field: "pages[1].slug",
		},
		{
			name:   "paragraph font size outside domain",
			mutate: func(c *Config) { c.Pages[0].Paragraphs[0].FontSize = "xxl" },
			field:  "pages[0].paragraphs[0].font_size",
		},
		{
			name:   "page without paragraphs",
			mutate: func(c *Config) { c.Pages[0].Paragraphs = nil },
			field:  "pages[0].paragraphs",
		},
		{
			name:   "parallel out of range",
			mutate: func(c *Config) { c.Build.Parallel = 1000 },
			field:  "build.parallel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			require.Error(t, err)

			var validationErr *quillerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			if tt.message != "" {
				assert.Contains(t, validationErr.Message, tt.message)
			}
		})
	}
}

func TestValidateConfigAcceptsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateConfig(validConfig()))
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)
	var validationErr *quillerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "config", validationErr.Field)
}

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	assert.Same(t, GetValidator(), GetValidator())
}

func TestValidateParallel(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateParallel(1))
	require.NoError(t, ValidateParallel(MaxParallel))

	for _, n := range []int{-1, 0, MaxParallel + 1, 1000} {
		err := ValidateParallel(n)
		var validationErr *quillerrors.ValidationError
		require.ErrorAs(t, err, &validationErr, n)
		assert.Equal(t, "parallel", validationErr.Field)
	}
}
