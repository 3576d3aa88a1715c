// Package printer renders layers, entry groups, transform previews and
// diagnostics as terminal tables.
package printer

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"mappy/internal/common"
	"mappy/internal/diagnostic"
	"mappy/internal/entry"
	"mappy/internal/layer"
	"mappy/internal/transform"
	"mappy/internal/validate"
)

// Printer writes tables to Out.
type Printer struct {
	Out io.Writer

	title   *color.Color
	faint   *color.Color
	warn    *color.Color
	bad     *color.Color
	changed *color.Color
}

// New returns a printer for out; colors are disabled when noColor is set.
func New(out io.Writer, noColor bool) *Printer {
	p := &Printer{
		Out:     out,
		title:   color.New(color.Bold, color.Underline),
		faint:   color.New(color.Faint),
		warn:    color.New(color.FgHiYellow),
		bad:     color.New(color.FgRed, color.Bold),
		changed: color.New(color.FgGreen),
	}

	if noColor {
		for _, c := range []*color.Color{p.title, p.faint, p.warn, p.bad, p.changed} {
			c.DisableColor()
		}
	}

	return p
}

func (p *Printer) table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "

	return tbl
}

func (p *Printer) flush(tbl *uitable.Table) {
	_, _ = fmt.Fprintln(p.Out, tbl)
}

// Title prints an underlined heading.
func (p *Printer) Title(format string, args ...any) {
	_, _ = fmt.Fprintln(p.Out, p.title.Sprintf(format, args...))
}

// Layers prints layers with per-section entry counts.
func (p *Printer) Layers(layers []layer.Layer, targets, sources []entry.Stats) {
	if len(layers) == 0 {
		_, _ = fmt.Fprintln(p.Out, p.faint.Sprint("no layers"))
		return
	}

	tc := countByLayer(targets)
	sc := countByLayer(sources)

	tbl := p.table()
	tbl.AddRow("KEY", "PATH", "TARGETS", "SOURCES")

	for _, l := range layers {
		path := l.Path
		if path == "" {
			path = p.faint.Sprint("(empty)")
		}

		tbl.AddRow(l.Key, path, tc[l.Key], sc[l.Key])
	}

	p.flush(tbl)
}

func countByLayer(stats []entry.Stats) map[string]int {
	out := make(map[string]int, len(stats))
	for _, s := range stats {
		out[s.Layer] = s.Count
	}

	return out
}

// Groups prints entry groups in numeric layer order with offsets.
func (p *Printer) Groups(groups map[string][]entry.Row) {
	layers := slices.SortedFunc(maps.Keys(groups), common.CompareNumeric)
	if len(layers) == 0 {
		_, _ = fmt.Fprintln(p.Out, p.faint.Sprint("no entries"))
		return
	}

	for _, l := range layers {
		p.Title("Layer %s - %d entries", l, len(groups[l]))

		tbl := p.table()
		tbl.AddRow("KEY", "VALUE", "OFFSET")

		for _, row := range groups[l] {
			tbl.AddRow(row.Key, row.Value, p.offset(row.Offset))
		}

		p.flush(tbl)
	}
}

func (p *Printer) offset(o entry.Offset) string {
	switch {
	case !o.Valid:
		return p.bad.Sprint(o)
	case o.Value != 0:
		return p.warn.Sprint(o)
	default:
		return o.String()
	}
}

// Preview prints every change of a transform and then its conflicts.
func (p *Printer) Preview(pv *transform.Preview) {
	tbl := p.table()
	tbl.AddRow("#", "OLD KEY", "OLD VALUE", "NEW KEY", "NEW VALUE", "OFFSET", "")

	bad := make(map[int]bool, len(pv.Conflicts))
	for _, c := range pv.Conflicts {
		bad[c.Index] = true
	}

	for _, c := range pv.Changes {
		newKey, newValue := c.NewKey, c.NewValue
		if c.NewKey != c.OldKey {
			newKey = p.changed.Sprint(newKey)
		}

		if !validate.EqualHex(c.NewValue, c.OldValue) {
			newValue = p.changed.Sprint(newValue)
		}

		var note string

		switch {
		case bad[c.Index]:
			note = p.bad.Sprint("conflict")
		case c.Invalid:
			note = p.bad.Sprint("unparsable")
		case c.Clamped:
			note = p.warn.Sprint("clamped")
		}

		tbl.AddRow(c.Index, c.OldKey, c.OldValue, newKey, newValue,
			fmt.Sprintf("%s -> %s", c.OldOffset(), p.offset(c.NewOffset())), note)
	}

	p.flush(tbl)

	changed, clamped := pv.Counts()
	_, _ = fmt.Fprintf(p.Out, "%s: %d selected, %d changed, %d clamped\n",
		pv.Op.Kind, len(pv.Changes), changed, clamped)

	for _, c := range pv.Conflicts {
		_, _ = fmt.Fprintln(p.Out, p.bad.Sprint("conflict: ")+c.String())
	}
}

// Diagnostics prints one line per diagnostic, errors first.
func (p *Printer) Diagnostics(d *diagnostic.Diagnostics) {
	all := d.All()
	if len(all) == 0 {
		_, _ = fmt.Fprintln(p.Out, p.changed.Sprint("ok"))
		return
	}

	tbl := p.table()

	for _, diag := range all {
		sev := diag.Severity.String()

		switch diag.Severity {
		case diagnostic.DiagnosticError:
			sev = p.bad.Sprint(sev)
		case diagnostic.DiagnosticWarning:
			sev = p.warn.Sprint(sev)
		default:
			sev = p.faint.Sprint(sev)
		}

		tbl.AddRow(sev, diag.Scope, diag.Key, diag.Code, diag.Message)
	}

	p.flush(tbl)
}
