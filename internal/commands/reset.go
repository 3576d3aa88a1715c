package commands

import (
	"github.com/spf13/cobra"
)

func addReset(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the editing session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.store.Clear()
		},
	}

	topLevel.AddCommand(cmd)
}
