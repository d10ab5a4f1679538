package config

import (
	"net/url"
	"strings"

	"github.com/gosimple/slug"
)

// IndexSlug is the slug of the page written to the site root.
const IndexSlug = "index"

// Default build settings applied when the site file omits them.
const (
	DefaultOutDir   = "public"
	DefaultParallel = 4
	DefaultLang     = "en"
)

// MaxParallel bounds build.parallel and its command-line override.
const MaxParallel = 64

// Config represents the full site document.
type Config struct {
	Version string    `yaml:"version" validate:"required,semver"`
	Site    Site      `yaml:"site"`
	Nav     []NavItem `yaml:"nav,omitempty" validate:"omitempty,dive"`
	Pages   []Page    `yaml:"pages" validate:"required,min=1,dive"`
	Build   Build     `yaml:"build,omitempty"`
}

// Site holds metadata shared by every page.
type Site struct {
	Title       string `yaml:"title" validate:"required,max=200"`
	Description string `yaml:"description" validate:"required"`
	Lang        string `yaml:"lang,omitempty" validate:"omitempty,bcp47_language_tag"`
	Logo        string `yaml:"logo,omitempty"`
	BaseURL     string `yaml:"base_url,omitempty" validate:"omitempty,url"`
	Author      Author `yaml:"author"`
}

// Author is the site owner shown in the footer and bio.
type Author struct {
	Name     string       `yaml:"name" validate:"required"`
	Position string       `yaml:"position,omitempty"`
	Company  string       `yaml:"company,omitempty"`
	Email    string       `yaml:"email,omitempty" validate:"omitempty,email"`
	Social   []SocialLink `yaml:"social,omitempty" validate:"omitempty,unique=Icon,dive"`
}

// SocialLink is one entry of the author's social profile list.
type SocialLink struct {
	Icon string `yaml:"icon" validate:"required,icon"`
	Link string `yaml:"link" validate:"required,url"`
}

// NavItem is one header navigation entry.
type NavItem struct {
	Title string `yaml:"title" validate:"required"`
	Path  string `yaml:"path" validate:"required,startswith=/"`
}

// Page is a single content page.
type Page struct {
	Title       string      `yaml:"title" validate:"required"`
	Slug        string      `yaml:"slug,omitempty" validate:"omitempty,slug"`
	Description string      `yaml:"description,omitempty"`
	Bio         bool        `yaml:"bio,omitempty"`
	Paragraphs  []Paragraph `yaml:"paragraphs" validate:"required,min=1,dive"`
}

// Paragraph is a block of body text.
type Paragraph struct {
	Text     string `yaml:"text" validate:"required"`
	FontSize string `yaml:"font_size,omitempty" validate:"omitempty,oneof=s m l"`
	Bold     bool   `yaml:"bold,omitempty"`
}

// Build holds output settings.
type Build struct {
	OutDir string `yaml:"out_dir,omitempty"`
	// Stylesheet optionally points at a hand-written sheet used instead of the
	// generated one. It must still cover every style identifier.
	Stylesheet       string   `yaml:"stylesheet,omitempty"`
	Parallel         int      `yaml:"parallel,omitempty" validate:"omitempty,min=1,max=64"`
	ExtraStylesheets []string `yaml:"extra_stylesheets,omitempty" validate:"omitempty,dive,required"`
}

// ApplyDefaults fills omitted optional settings in place.
func (c *Config) ApplyDefaults() {
	if c.Site.Lang == "" {
		c.Site.Lang = DefaultLang
	}
	if c.Build.OutDir == "" {
		c.Build.OutDir = DefaultOutDir
	}
	if c.Build.Parallel == 0 {
		c.Build.Parallel = DefaultParallel
	}
}

// ResolvedSlug returns the page slug, deriving it from the title when omitted.
func (p Page) ResolvedSlug() string {
	if p.Slug != "" {
		return p.Slug
	}
	return slug.Make(p.Title)
}

// PathPrefix returns the URL path the site is served under, always ending in
// a slash.
func (s Site) PathPrefix() string {
	if s.BaseURL == "" {
		return "/"
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Path == "" {
		return "/"
	}
	if !strings.HasSuffix(u.Path, "/") {
		return u.Path + "/"
	}
	return u.Path
}

// IndexPage returns the position of the page written to the site root: the
// page whose slug is "index", otherwise the first page.
func (c *Config) IndexPage() int {
	for i, p := range c.Pages {
		if p.ResolvedSlug() == IndexSlug {
			return i
		}
	}
	return 0
}
