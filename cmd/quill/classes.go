package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quill/internal/ui/sections"
	"github.com/alexisbeaulieu97/quill/internal/ui/style"
	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

func newClassesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes [block...]",
		Short: "List every style identifier components can produce",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := sections.Registry()
			blocks := args
			if len(blocks) == 0 {
				blocks = reg.Blocks()
			}

			out := cmd.OutOrStdout()
			for _, block := range blocks {
				schema, ok := reg.Schema(block)
				if !ok {
					return quillerrors.NewStyleError(block, "", "", quillerrors.ErrUnknownBlock)
				}
				for _, class := range style.BlockClasses(schema) {
					fmt.Fprintln(out, class)
				}
			}
			return nil
		},
	}

	return cmd
}
