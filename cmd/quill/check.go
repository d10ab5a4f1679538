package main

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quill/internal/config"
	"github.com/alexisbeaulieu97/quill/internal/logger"
	"github.com/alexisbeaulieu97/quill/internal/revision"
	"github.com/alexisbeaulieu97/quill/internal/site"
	"github.com/alexisbeaulieu97/quill/internal/ui/sections"
)

type checkOptions struct {
	ConfigPath string
	Diff       bool
	OutDir     string
}

var errOutOfDate = errors.New("published output is out of date")

var checkCmdRunner = runCheck

func newCheckCmd(root *rootFlags) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the site file and stylesheet without writing output",
		Long: `Check parses and validates the site file, verifies that the stylesheet
declares a rule for every style identifier and renders each page in memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return checkCmdRunner(cmd.Context(), cmd.OutOrStdout(), log, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", defaultConfigPath, "Path to the site file")
	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Compare a fresh build with the published output")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "Published output directory (defaults to build.out_dir)")

	return cmd
}

func runCheck(ctx context.Context, out io.Writer, log *logger.Logger, opts checkOptions) error {
	path, err := validateConfigPath(opts.ConfigPath)
	if err != nil {
		return err
	}

	cfg, err := config.ParseConfig(path)
	if err != nil {
		return err
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
	if opts.Diff {
		changes, err := builder.Diff(ctx, cfg, absOrEmpty(opts.OutDir))
		if err != nil {
			return err
		}
		newPrinter(out).diffReport(changes)
		if len(changes) > 0 {
			return errOutOfDate
		}
		return nil
	}

	res, err := builder.Check(ctx, cfg)
	if err != nil {
		return err
	}

	log.Debug("check complete", "pages", res.Pages, "duration", res.Duration.String())
	newPrinter(out).checkReport(path, res, len(sections.Registry().Classes()))
	return nil
}
