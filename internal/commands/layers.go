package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mappy/internal/entry"
	"mappy/internal/layer"
)

func addLayers(topLevel *cobra.Command, a *app) {
	numeric := false

	cmd := &cobra.Command{
		Use:     "layers",
		Aliases: []string{"layer"},
		Short:   "List layers in display order.",
		Example: `
mappy layers
mappy layers --numeric
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cur, err := a.restore(cmd)
			if err != nil {
				return err
			}

			list := layer.Ordered(cur.doc)
			if numeric {
				list = layer.List(cur.doc)
			}

			a.printer(cmd).Layers(list, entry.Summarize(cur.doc.Targets), entry.Summarize(cur.doc.Sources))

			return nil
		},
	}

	cmd.Flags().BoolVar(&numeric, "numeric", false, "Sort by numeric key instead of display order.")

	addLayerAdd(cmd, a)
	addLayerRename(cmd, a)
	addLayerRemove(cmd, a)
	addLayerMove(cmd, a)

	topLevel.AddCommand(cmd)
}

func addLayerAdd(parent *cobra.Command, a *app) {
	path := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a layer under the lowest free key.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cur, err := a.restore(cmd)
			if err != nil {
				return err
			}

			key := layer.Add(cur.doc)
			if path != "" {
				if err := layer.Update(cur.doc, key, key, path); err != nil {
					return err
				}
			}

			if err := a.save(cur); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), key)

			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Path of the new layer.")
	parent.AddCommand(cmd)
}

func addLayerRename(parent *cobra.Command, a *app) {
	var (
		path        string
		moveEntries bool
	)

	cmd := &cobra.Command{
		Use:   "set KEY [NEW_KEY]",
		Short: "Change a layer's path and optionally its key.",
		Example: `
mappy layers set 01 --path 'C:\maps\overlay'
mappy layers set 01 05 --move-entries
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := a.restore(cmd)
			if err != nil {
				return err
			}

			key, newKey := args[0], args[0]
			if len(args) == 2 {
				newKey = args[1]
			}

			newPath, ok := cur.doc.Layers[key]
			if cmd.Flags().Changed("path") {
				newPath = path
			}

			if ok && moveEntries && newKey != key {
				for _, s := range entry.Sections {
					moved, err := entry.RenameLayer(cur.doc.Entries(s), key, newKey)
					if err != nil {
						return fmt.Errorf("%s: %w", s, err)
					}

					cur.doc.SetEntries(s, moved)
				}
			}

			if err := layer.Update(cur.doc, key, newKey, newPath); err != nil {
				return err
			}

			return a.save(cur)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "New path of the layer.")
	cmd.Flags().BoolVar(&moveEntries, "move-entries", false, "Move the layer's targets and sources to the new key.")
	parent.AddCommand(cmd)
}

func addLayerRemove(parent *cobra.Command, a *app) {
	cascade := false

	cmd := &cobra.Command{
		Use:     "rm KEY",
		Aliases: []string{"remove"},
		Short:   "Remove a layer, keeping its entries unless --cascade is set.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := a.restore(cmd)
			if err != nil {
				return err
			}

			if !layer.Remove(cur.doc, args[0]) {
				return fmt.Errorf("remove %s: %w", args[0], layer.ErrLayerNotFound)
			}

			if cascade {
				for _, s := range entry.Sections {
					cur.doc.SetEntries(s, entry.RemoveLayerEntries(cur.doc.Entries(s), args[0]))
				}
			}

			return a.save(cur)
		},
	}

	cmd.Flags().BoolVar(&cascade, "cascade", false, "Also delete the layer's targets and sources.")
	parent.AddCommand(cmd)
}

func addLayerMove(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "move KEY POSITION",
		Short: "Move a layer to a 0-based position in the display order.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("position: %w", err)
			}

			cur, err := a.restore(cmd)
			if err != nil {
				return err
			}

			if err := layer.Move(cur.doc, args[0], pos); err != nil {
				return err
			}

			return a.save(cur)
		},
	}

	parent.AddCommand(cmd)
}
