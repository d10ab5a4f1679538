package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quill/internal/config"
	"github.com/alexisbeaulieu97/quill/internal/logger"
	"github.com/alexisbeaulieu97/quill/internal/revision"
	"github.com/alexisbeaulieu97/quill/internal/site"
)

type buildOptions struct {
	ConfigPath string
	OutDir     string
	Parallel   int
}

var buildCmdRunner = runBuild

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site into the output directory",
		Long: `Build compiles the stylesheet, renders every page and replaces the output
directory in one step. A failed build leaves the previous output untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return buildCmdRunner(cmd.Context(), cmd.OutOrStdout(), log, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", defaultConfigPath, "Path to the site file")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "Output directory (overrides build.out_dir)")
	cmd.Flags().IntVar(&opts.Parallel, "parallel", 0, fmt.Sprintf("Pages rendered concurrently, 1 to %d (overrides build.parallel)", config.MaxParallel))

	return cmd
}

func runBuild(ctx context.Context, out io.Writer, log *logger.Logger, opts buildOptions) error {
	if opts.Parallel != 0 {
		if err := config.ValidateParallel(opts.Parallel); err != nil {
			return err
		}
	}

	path, err := validateConfigPath(opts.ConfigPath)
	if err != nil {
		return err
	}

	cfg, err := config.ParseConfig(path)
	if err != nil {
		return err
	}
	if opts.Parallel > 0 {
		cfg.Build.Parallel = opts.Parallel
	}

	baseDir := filepath.Dir(path)
	rev, err := revision.Read(baseDir)
	if err != nil {
		log.Warn("revision unavailable", "error", err.Error())
	}

	builder := site.NewBuilder(site.Options{
		Logger:    log,
		Generator: generator(rev.Commit()),
		BaseDir:   baseDir,
	})

	log.Info("building site", "config", path, "pages", len(cfg.Pages), "revision", rev.Short())
	res, err := builder.Build(ctx, cfg, absOrEmpty(opts.OutDir))
	if err != nil {
		return err
	}

	newPrinter(out).buildReport(res, rev)
	return nil
}

func absOrEmpty(p string) string {
	if p == "" {
		return ""
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
