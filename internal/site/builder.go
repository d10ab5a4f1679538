// Package site builds a static site from a validated configuration: it
// compiles the stylesheet, renders every page and publishes the output
// directory in one step.
package site

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/quill/internal/config"
	"github.com/alexisbeaulieu97/quill/internal/logger"
	"github.com/alexisbeaulieu97/quill/internal/stylesheet"
	"github.com/alexisbeaulieu97/quill/internal/ui/components"
	"github.com/alexisbeaulieu97/quill/internal/ui/sections"
	"github.com/alexisbeaulieu97/quill/internal/ui/style"
	"github.com/alexisbeaulieu97/quill/internal/ui/theme"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// Options configures a Builder. Zero fields fall back to defaults.
type Options struct {
	Logger    *logger.Logger
	Clock     sections.Clock
	Theme     *theme.Theme
	Registry  *style.Registry
	Generator string
	// BaseDir resolves relative paths in the configuration, typically the
	// directory holding the site file.
	BaseDir string
}

// Builder renders sites. It is safe for concurrent use.
type Builder struct {
	log       *logger.Logger
	clock     sections.Clock
	theme     theme.Theme
	registry  *style.Registry
	generator string
	baseDir   string
}

// Result summarises a completed build.
type Result struct {
	OutDir     string
	Stylesheet string
	// Files lists written paths relative to OutDir, sorted.
	Files    []string
	Pages    int
	Bytes    int64
	Duration time.Duration
	// ExtraClasses lists classes a supplied stylesheet declares that no
	// component produces.
	ExtraClasses []string
}

// NewBuilder constructs a Builder.
func NewBuilder(opts Options) *Builder {
	b := &Builder{
		log:       opts.Logger,
		clock:     opts.Clock,
		theme:     theme.DefaultTheme(),
		registry:  opts.Registry,
		generator: opts.Generator,
		baseDir:   opts.BaseDir,
	}
	if b.log == nil {
		b.log = logger.Nop()
	}
	b.log = b.log.Component("site")
	if b.clock == nil {
		b.clock = sections.SystemClock
	}
	if opts.Theme != nil {
		b.theme = *opts.Theme
	}
	if b.registry == nil {
		b.registry = sections.Registry()
	}
	return b
}

// Stylesheet returns the sheet the build would publish: the configured
// hand-written sheet after checking it covers every identifier, or the
// generated one.
func (b *Builder) Stylesheet(cfg *config.Config) ([]byte, stylesheet.Report, error) {
	if cfg.Build.Stylesheet == "" {
		data, err := stylesheet.Generate(b.registry, b.theme)
		if err != nil {
			return nil, stylesheet.Report{}, fmt.Errorf("generate stylesheet: %w", err)
		}
		return data, stylesheet.Report{}, nil
	}

	p := b.resolve(cfg.Build.Stylesheet)
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, stylesheet.Report{}, fmt.Errorf("read stylesheet: %w", err)
	}
	report, err := stylesheet.Verify(b.registry, data)
	if err != nil {
		return nil, report, fmt.Errorf("stylesheet %s: %w", p, err)
	}
	return data, report, nil
}

// Check renders every page in memory without writing anything.
func (b *Builder) Check(ctx context.Context, cfg *config.Config) (Result, error) {
	res, _, err := b.memory(ctx, cfg)
	return res, err
}

// memory renders the whole site into a map keyed by output path.
func (b *Builder) memory(ctx context.Context, cfg *config.Config) (Result, map[string][]byte, error) {
	start := time.Now()
	sheet, report, err := b.Stylesheet(cfg)
	if err != nil {
		return Result{}, nil, err
	}
	name := stylesheet.FileName(sheet)
	pages := b.plan(cfg, b.stylesheetLinks(cfg, name), b.generator)

	contents := map[string][]byte{name: sheet}
	var mu sync.Mutex
	err = b.render(ctx, cfg, pages, func(p page, data []byte) error {
		mu.Lock()
		defer mu.Unlock()
		contents[p.file] = data
		return nil
	})
	if err != nil {
		return Result{}, nil, err
	}

	res := Result{
		Stylesheet:   name,
		Pages:        len(pages),
		Duration:     time.Since(start),
		ExtraClasses: report.Extra,
	}
	for f, data := range contents {
		res.Files = append(res.Files, f)
		res.Bytes += int64(len(data))
	}
	slices.Sort(res.Files)
	return res, contents, nil
}

// Build renders the site into outDir, or cfg.Build.OutDir when outDir is
// empty. Output is staged in a sibling temporary directory and moved into
// place only when every page rendered, so a failed build leaves the previous
// output untouched.
func (b *Builder) Build(ctx context.Context, cfg *config.Config, outDir string) (Result, error) {
	start := time.Now()
	outDir, err := b.outputDir(cfg, outDir)
	if err != nil {
		return Result{}, err
	}

	sheet, report, err := b.Stylesheet(cfg)
	if err != nil {
		return Result{}, err
	}
	for _, class := range report.Extra {
		b.log.Warn("stylesheet declares unused class", "class", class)
	}

	stage, err := newStage(outDir)
	if err != nil {
		return Result{}, err
	}
	defer stage.discard()

	name := stylesheet.FileName(sheet)
	if err := stage.write(name, sheet); err != nil {
		return Result{}, err
	}
	b.log.Debug("stylesheet written", "file", name, "bytes", len(sheet))

	pages := b.plan(cfg, b.stylesheetLinks(cfg, name), b.generator)
	err = b.render(ctx, cfg, pages, func(p page, data []byte) error {
		if err := stage.write(p.file, data); err != nil {
			return err
		}
		b.log.Info("page written", "page", p.layout.Title, "slug", p.slug, "file", p.file)
		return nil
	})
	if err != nil {
		b.log.Error(err, "build failed")
		return Result{}, err
	}

	if err := stage.publish(); err != nil {
		return Result{}, err
	}

	res := Result{
		OutDir:       outDir,
		Stylesheet:   name,
		Files:        stage.files(),
		Pages:        len(pages),
		Bytes:        stage.bytes(),
		Duration:     time.Since(start),
		ExtraClasses: report.Extra,
	}
	b.log.Info("build complete", "pages", res.Pages, "out", outDir, "duration", res.Duration.String())
	return res, nil
}

// render renders pages with at most parallel in flight. Components share
// only the read-only registry, so pages need no coordination. The first
// failure cancels the remaining work.
func (b *Builder) render(ctx context.Context, cfg *config.Config, pages []page, emit func(page, []byte) error) error {
	parallel := cfg.Build.Parallel
	if parallel < 1 {
		parallel = config.DefaultParallel
	}
	rctx := sections.DefaultContext().
		WithRegistry(b.registry).
		WithNavigator(components.PathNavigator{Prefix: cfg.Site.PathPrefix()})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for _, p := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := p.layout.Render(rctx)
			if err != nil {
				return fmt.Errorf("page %q: %w", p.slug, err)
			}
			var buf bytes.Buffer
			if err := html.Render(&buf, doc); err != nil {
				return fmt.Errorf("page %q: serialise: %w", p.slug, err)
			}
			return emit(p, buf.Bytes())
		})
	}
	return g.Wait()
}

func (b *Builder) stylesheetLinks(cfg *config.Config, name string) []string {
	prefix := cfg.Site.PathPrefix()
	links := []string{path.Join(prefix, name)}
	for _, extra := range cfg.Build.ExtraStylesheets {
		links = append(links, asset(prefix, extra))
	}
	return links
}

// outputDir resolves the directory a build replaces. Publishing removes the
// previous output wholesale, so a directory that is, or contains, the site
// directory is rejected.
func (b *Builder) outputDir(cfg *config.Config, outDir string) (string, error) {
	if outDir == "" {
		outDir = b.resolve(cfg.Build.OutDir)
	}
	if outDir == "" {
		return "", quillerrors.NewValidationError("build.out_dir", "output directory is empty", nil)
	}

	out, err := filepath.Abs(outDir)
	if err != nil {
		return "", fmt.Errorf("resolve output directory: %w", err)
	}
	siteDir, err := filepath.Abs(b.baseDir)
	if err != nil {
		return "", fmt.Errorf("resolve site directory: %w", err)
	}
	if within(siteDir, out) {
		return "", quillerrors.NewValidationError("build.out_dir",
			fmt.Sprintf("output directory %s would replace the site directory %s", out, siteDir), nil)
	}
	return outDir, nil
}

// within reports whether p is dir or lies below it. Both must be absolute.
func within(p, dir string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func (b *Builder) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || b.baseDir == "" {
		return p
	}
	return filepath.Join(b.baseDir, p)
}
