package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mappy/internal/mapfile"
)

func addExport(topLevel *cobra.Command, a *app) {
	stdout := false

	cmd := &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write the session document to FILE, or back to the file it was opened from.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := a.restore(cmd)
			if err != nil {
				return err
			}

			if stdout {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), mapfile.Encode(cur.doc, cur.format))
				return nil
			}

			target := cur.fileName
			if len(args) == 1 {
				target = args[0]
			}

			if target == "" {
				return errors.New("no file name: pass FILE or open a file first")
			}

			if err := mapfile.WriteFile(cur.doc, cur.format, target); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", target)

			return nil
		},
	}

	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print instead of writing a file.")
	topLevel.AddCommand(cmd)
}
