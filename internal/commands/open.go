package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mappy/internal/mapfile"
)

func addOpen(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "open FILE",
		Short: "Load a mapping file into the editing session.",
		Example: `
mappy open layers.ini
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, f, err := mapfile.LoadFile(args[0], a.cfg.Strict)
			if err != nil {
				return err
			}

			cur := &current{doc: doc, fileName: args[0], format: f}
			if err := a.save(cur); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "opened %s: %d layers, %d targets, %d sources (%s)\n",
				args[0], len(doc.Layers), len(doc.Targets), len(doc.Sources), mapfile.NewlineName(f.Newline))

			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
