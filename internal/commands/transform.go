package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"mappy/internal/entry"
	"mappy/internal/transform"
)

func addTransform(topLevel *cobra.Command, a *app) {
	var (
		sectionName string
		layerKey    string
		keys        []string
		kindName    string
		op          transform.Op
		apply       bool
	)

	var kinds []string
	for _, d := range a.registry.All() {
		kinds = append(kinds, fmt.Sprintf("%s (%s): %s", d.Name(), strings.Join(d.Params, ", "), d.Description))
	}

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Preview, and with --apply commit, a batch transform.",
		Long: base.Wrap80("Selects entries of one section by --layer, by --keys, or all of them, "+
			"and previews the transform with conflicts. Nothing is written unless --apply is given "+
			"and the preview is conflict free.") + "\n\nKinds:\n  " + strings.Join(kinds, "\n  "),
		Example: `
mappy transform --layer 01 --kind shift_keys --amount 10
mappy transform --section sources --kind number_values --start 256 --step 1 --apply
mappy transform --keys 00.0001,00.0002 --kind set_same_value --value deadbeef --apply
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			section, err := entry.ParseSection(sectionName)
			if err != nil {
				return err
			}

			if op.Kind, err = a.registry.Lookup(kindName); err != nil {
				return err
			}

			if layerKey != "" && len(keys) > 0 {
				return fmt.Errorf("--layer and --keys are mutually exclusive")
			}

			cur, err := a.restore(cmd)
			if err != nil {
				return err
			}

			entries := cur.doc.Entries(section)

			var selected []entry.Entry

			switch {
			case len(keys) > 0:
				selected = entry.Pick(entries, keys)
			case layerKey != "":
				selected = entry.InLayer(entries, layerKey)
			default:
				selected = entry.Sorted(entries)
			}

			preview, err := transform.Plan(entries, selected, op)
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			p.Preview(preview)

			if !apply {
				return nil
			}

			faint := color.New(color.Faint)
			applied, err := transform.ApplyChunks(entries, preview, a.cfg.ChunkSize, func(done, total int) {
				if total > a.cfg.ChunkSize {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), faint.Sprintf("applied %d/%d", done, total))
				}
			})
			if err != nil {
				return err
			}

			cur.doc.SetEntries(section, applied)

			if err := a.save(cur); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "applied")

			return nil
		},
	}

	cmd.Flags().StringVar(&sectionName, "section", "targets", "Section to transform: targets or sources.")
	cmd.Flags().StringVar(&layerKey, "layer", "", "Select every entry of this layer.")
	cmd.Flags().StringSliceVar(&keys, "keys", nil, "Select these entry keys, in order.")
	cmd.Flags().StringVar(&kindName, "kind", "", "Transform kind.")
	cmd.Flags().Int64Var(&op.Amount, "amount", 0, "Amount for shift_keys and shift_values.")
	cmd.Flags().Int64Var(&op.Start, "start", 0, "First value for number_values.")
	cmd.Flags().Int64Var(&op.Step, "step", 1, "Increment for number_values.")
	cmd.Flags().StringVar(&op.Value, "value", "", "Hex value for set_same_value.")
	cmd.Flags().BoolVar(&apply, "apply", false, "Commit the transform if it has no conflicts.")
	_ = cmd.MarkFlagRequired("kind")

	topLevel.AddCommand(cmd)
}
