package cli

import (
	"fmt"
	"io"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/edat"
	"github.com/npillmayer/edat/grammar"
	"github.com/spf13/cobra"
)

func runDumpCmd(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	return dump(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, args)
}

// dump parses files and prints their tables. Diagnostics go to errout.
// Inputs with syntax errors are printed as far as they could be parsed.
func dump(out, errout io.Writer, format string, paths []string) error {
	failed := 0
	for _, path := range paths {
		if err := interrupted(); err != nil {
			return err
		}
		tracer().P("file", path).Debugf("dumping")
		tbl, err := edat.ParseFile(path, converters, grammar.WithReporter(reportTo(errout)))
		if tbl == nil {
			return err
		}
		if err != nil {
			failed++
		}
		if err := render(out, tableWriter(path, tbl), format); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("syntax errors in %d of %d input(s)", failed, len(paths))
	}
	return nil
}

func runGetCmd(cmd *cobra.Command, args []string) error {
	return get(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], args[1])
}

// get prints the value at a dotted path within a file.
func get(out, errout io.Writer, file, path string) error {
	tbl, err := edat.ParseFile(file, converters, grammar.WithReporter(reportTo(errout)))
	if tbl == nil {
		return err
	}
	value, ok := tbl.Lookup(path)
	if !ok {
		return fmt.Errorf("no entry %q in %s", path, file)
	}
	_, err = Formatter{}.Format(value, out)
	return err
}

func runTypesCmd(cmd *cobra.Command, args []string) error {
	return listTypes(cmd.OutOrStdout())
}

// listTypes prints the type tags of all registered converters.
func listTypes(out io.Writer) error {
	tw := prettytable.NewWriter()
	tw.AppendHeader(prettytable.Row{"type tag"})
	for _, tag := range converters.Tags() {
		tw.AppendRow(prettytable.Row{tag})
	}
	tw.SetStyle(prettytable.StyleLight)
	return render(out, tw, "text")
}

// interrupted returns an error if the user has interrupted the application.
func interrupted() error {
	if ctx := edat.SignalContext; ctx != nil {
		return ctx.Err()
	}
	return nil
}
