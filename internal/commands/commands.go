// Package commands wires the mappy command tree.
package commands

import (
	"fmt"

	"github.com/fatih/color"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"mappy/internal/config"
	"mappy/internal/mapfile"
	"mappy/internal/printer"
	"mappy/internal/session"
	"mappy/internal/transform"
)

// app is the state shared by all subcommands, built before each run.
type app struct {
	cfg      *config.Config
	store    session.Store
	registry *transform.Registry
	noColor  bool
}

func New() *cobra.Command {
	a := &app{registry: transform.DefaultRegistry()}

	cmd := &cobra.Command{
		Use:   "mappy",
		Short: base.Wrap80("Edit layer/target/source mapping files from the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output.")

	AddCommands(cmd, a)

	return cmd
}

func AddCommands(topLevel *cobra.Command, a *app) {
	addOpen(topLevel, a)
	addLayers(topLevel, a)
	addEntries(topLevel, a)
	addTransform(topLevel, a)
	addRecipe(topLevel, a)
	addCheck(topLevel, a)
	addFmt(topLevel, a)
	addExport(topLevel, a)
	addReset(topLevel, a)
	addVersion(topLevel)
}

func (a *app) init() error {
	if a.cfg != nil {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a.cfg = cfg
	if a.store == nil {
		a.store = session.NewDiskStore(cfg.StorePath)
	}

	if a.noColor {
		color.NoColor = true
	}

	return nil
}

func (a *app) printer(cmd *cobra.Command) *printer.Printer {
	return printer.New(cmd.OutOrStdout(), a.noColor)
}

// current is the document of the saved session plus where it came from.
type current struct {
	doc      *mapfile.Document
	fileName string
	format   mapfile.Format
}

// restore loads the session; a discarded session is reported and
// replaced by an empty document.
func (a *app) restore(cmd *cobra.Command) (*current, error) {
	r, err := session.Restore(a.store, a.cfg.Strict)
	if err != nil {
		return nil, err
	}

	if r.Discarded {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(),
			color.New(color.FgHiYellow).Sprint("saved session was unreadable and has been cleared"))
	}

	cur := &current{doc: r.Doc, format: a.cfg.NewFormat()}
	if r.Snapshot != nil {
		cur.fileName = r.Snapshot.FileName
		cur.format = r.Snapshot.Format()
	}

	return cur, nil
}

func (a *app) save(cur *current) error {
	return session.Save(a.store, cur.doc, cur.fileName, cur.format)
}
