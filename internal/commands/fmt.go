package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mappy/internal/mapfile"
)

func addFmt(topLevel *cobra.Command, a *app) {
	write := false

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Rewrite a mapping file in canonical order, keeping its line endings.",
		Example: `
mappy fmt layers.ini
mappy fmt -w layers.ini
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, f, err := mapfile.LoadFile(args[0], a.cfg.Strict)
			if err != nil {
				return err
			}

			if write {
				return mapfile.WriteFile(doc, f, args[0])
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), mapfile.Encode(doc, f))

			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the file.")
	topLevel.AddCommand(cmd)
}
