package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"mappy/internal/mapfile"
)

var errCheckFailed = errors.New("document has errors")

func addCheck(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "check [FILE]",
		Short: "Report malformed keys and values, unknown layers and non-zero offsets.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc *mapfile.Document

			if len(args) == 1 {
				d, _, err := mapfile.LoadFile(args[0], a.cfg.Strict)
				if err != nil {
					return err
				}

				doc = d
			} else {
				cur, err := a.restore(cmd)
				if err != nil {
					return err
				}

				doc = cur.doc
			}

			res := mapfile.Check(doc)
			a.printer(cmd).Diagnostics(res)

			if res.HasErrors() {
				return errCheckFailed
			}

			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
