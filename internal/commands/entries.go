package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mappy/internal/entry"
)

func addEntries(topLevel *cobra.Command, a *app) {
	var (
		sectionName string
		layerKey    string
	)

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Show entries grouped by layer, with offsets.",
		Example: `
mappy entries
mappy entries --section sources --layer 01
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			section, err := entry.ParseSection(sectionName)
			if err != nil {
				return err
			}

			cur, err := a.restore(cmd)
			if err != nil {
				return err
			}

			groups := entry.GroupByLayer(cur.doc.Entries(section))
			if layerKey != "" {
				groups = map[string][]entry.Row{layerKey: groups[layerKey]}
			}

			a.printer(cmd).Groups(groups)

			return nil
		},
	}

	cmd.Flags().StringVar(&sectionName, "section", "targets", "Section to show: targets or sources.")
	cmd.Flags().StringVar(&layerKey, "layer", "", "Only show this layer.")

	addEntrySet(cmd, a)
	addEntryRemove(cmd, a)

	topLevel.AddCommand(cmd)
}

func addEntrySet(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "set SECTION KEY VALUE",
		Short: "Create or overwrite one entry.",
		Example: `
mappy entries set targets 01.0005 00000005
`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := entry.ParseSection(args[0])
			if err != nil {
				return err
			}

			cur, err := a.restore(cmd)
			if err != nil {
				return err
			}

			updated, err := entry.Set(cur.doc.Entries(section), args[1], args[2])
			if err != nil {
				return err
			}

			cur.doc.SetEntries(section, updated)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (offset %s)\n",
				args[1], updated[args[1]], entry.ComputeOffset(args[1], updated[args[1]]))

			return a.save(cur)
		},
	}

	parent.AddCommand(cmd)
}

func addEntryRemove(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:     "rm SECTION KEY...",
		Aliases: []string{"remove"},
		Short:   "Delete entries.",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := entry.ParseSection(args[0])
			if err != nil {
				return err
			}

			cur, err := a.restore(cmd)
			if err != nil {
				return err
			}

			entries := cur.doc.Entries(section)
			for _, k := range args[1:] {
				entries = entry.Delete(entries, k)
			}

			cur.doc.SetEntries(section, entries)

			return a.save(cur)
		},
	}

	parent.AddCommand(cmd)
}
