package cli

import (
	"fmt"
	"io"
	"strconv"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/edat/edat/ui/termui"
	"github.com/npillmayer/edat/grammar"
	"github.com/npillmayer/edat/table"
)

// Formatter formats EDAT tables, values and diagnostics for the terminal.
type Formatter struct {
	termui.DefaultFormatter
}

func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("cli.Format called for item %T", item)
	switch t := item.(type) {
	case *table.Table:
		item = tableWriter("", t)
	case string:
		item = strconv.Quote(t)
	case *grammar.Diagnostic:
		_, err := io.WriteString(w, diagnosticText(t))
		return err == nil, err
	}
	return f.DefaultFormatter.Format(item, w)
}

// --- Tables ----------------------------------------------------------------

// tableWriter lists the entries of an EDAT table with their Go types.
// Entries of nested tables follow their table's row, named by dotted path.
func tableWriter(title string, tbl *table.Table) prettytable.Writer {
	tw := prettytable.NewWriter()
	if title != "" {
		tw.SetTitle(title)
	}
	tw.AppendHeader(prettytable.Row{"name", "type", "value"})
	appendRows(tw, "", tbl)
	tw.SetStyle(prettytable.StyleLight)
	return tw
}

func appendRows(tw prettytable.Writer, prefix string, tbl *table.Table) {
	if tbl == nil {
		return
	}
	tbl.Each(func(name string, value interface{}) {
		path := prefix + name
		if sub, ok := value.(*table.Table); ok {
			tw.AppendRow(prettytable.Row{path, "table", fmt.Sprintf("%d entries", sub.Len())})
			appendRows(tw, path+table.PathSeparator, sub)
			return
		}
		tw.AppendRow(prettytable.Row{path, tbl.TypeOf(name).String(), formatValue(value)})
	})
}

func formatValue(value interface{}) string {
	if s, ok := value.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", value)
}

// render writes a table in one of the formats "text", "markdown" or "csv".
func render(w io.Writer, tw prettytable.Writer, format string) error {
	var out string
	switch format {
	case "", "text":
		out = tw.Render()
	case "markdown", "md":
		out = tw.RenderMarkdown()
	case "csv":
		out = tw.RenderCSV()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

// --- Diagnostics -----------------------------------------------------------

// reportTo returns a diagnostic reporter printing to w.
func reportTo(w io.Writer) func(*grammar.Diagnostic) {
	return func(d *grammar.Diagnostic) {
		io.WriteString(w, diagnosticText(d))
	}
}

// diagnosticText renders a diagnostic with a coloured label, the source line
// and a caret.
func diagnosticText(d *grammar.Diagnostic) string {
	label := prtxt.FgYellow.Sprint("Warning:")
	if d.Severity() == grammar.Error {
		label = prtxt.FgRed.Sprint("Error:")
	}
	return fmt.Sprintf("%s %s\n%s", label, d.Error(), d.Snippet())
}
