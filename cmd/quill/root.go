package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quill/internal/logger"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "quill",
		Short:         "Quill builds a personal blog from a single site file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", string(logger.FormatAuto), "Log format: auto, json or console")

	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newClassesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger creates the command logger. Logs go to w, keeping stdout for the
// report.
func (f *rootFlags) newLogger(w io.Writer) (*logger.Logger, error) {
	format, err := logger.ParseFormat(f.logFormat)
	if err != nil {
		return nil, err
	}
	level := "info"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, Format: format, Writer: w})
}
