package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mappy/internal/recipe"
)

func addRecipe(topLevel *cobra.Command, a *app) {
	dryRun := false

	cmd := &cobra.Command{
		Use:   "recipe FILE",
		Short: "Run a YAML recipe of transform steps, all or nothing.",
		Example: `
mappy recipe renumber.yaml --dry-run
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := recipe.LoadFile(args[0])
			if err != nil {
				return err
			}

			p := a.printer(cmd)

			diags := recipe.Validate(f, a.registry)
			if len(diags.All()) > 0 {
				p.Diagnostics(diags)
			}

			cur, err := a.restore(cmd)
			if err != nil {
				return err
			}

			out, results, err := recipe.Run(cur.doc, f, a.registry)
			if err != nil {
				return err
			}

			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d selected, %d changed, %d clamped\n",
					r.Name, r.Section, r.Selected, r.Changed, r.Clamped)
			}

			if dryRun {
				return nil
			}

			cur.doc = out

			return a.save(cur)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without saving.")
	topLevel.AddCommand(cmd)
}
