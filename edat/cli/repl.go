package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/edat"
	"github.com/npillmayer/edat/convert"
	"github.com/npillmayer/edat/edat/ui/termui"
	"github.com/npillmayer/edat/grammar"
	"github.com/npillmayer/edat/table"
	"github.com/spf13/cobra"
)

func runREPLCmd(cmd *cobra.Command, args []string) error {
	tracer().Infof("edat interpreter called")
	repl, err := termui.NewBaseREPL("edat", "0.1 experimental",
		historyFile(locateLogFile(), "edat"), replCompletions()...)
	if err != nil {
		return err
	}
	stdout, stderr := repl.Outputs()
	intp := newInterpreter(converters, stdout, stderr)
	intp.BaseREPL = repl
	repl.Interpreter = intp
	repl.Helper = intp.help
	if len(args) > 0 {
		intp.load(args[0])
	}
	repl.Prompt()
	return nil
}

// edatInterpreter holds a current table and interprets REPL commands
// working on it.
type edatInterpreter struct {
	*termui.BaseREPL
	suite     *convert.Suite
	current   *table.Table
	source    string // file the current table has been loaded from
	out       io.Writer
	errout    io.Writer
	formatter termui.Formatter
}

func newInterpreter(suite *convert.Suite, out, errout io.Writer) *edatInterpreter {
	return &edatInterpreter{
		suite:     suite,
		current:   table.New(),
		out:       out,
		errout:    errout,
		formatter: Formatter{},
	}
}

func (intp *edatInterpreter) help(w io.Writer) {
	io.WriteString(w, `
edat will interpret the following statements:

  load <file>        : parse a file and make it the current table
  show [path]        : print the current table or the value at a dotted path
  set <entry>        : parse an entry into the current table, e.g.
                       set b <- a = { x:int = "1" }
  types              : list known type tags
  clear              : start over with an empty table

`)
}

func replCompletions() []readline.PrefixCompleterInterface {
	return []readline.PrefixCompleterInterface{
		readline.PcItem("load", readline.PcItemDynamic(listInputFiles)),
		readline.PcItem("show"),
		readline.PcItem("set"),
		readline.PcItem("types"),
		readline.PcItem("clear"),
	}
}

// listInputFiles lists candidates for "load" in the current directory.
func listInputFiles(string) []string {
	files, err := filepath.Glob("*.edat")
	if err != nil {
		return nil
	}
	return files
}

// InterpretCommand is part of interface termui.REPLCommandInterpreter.
func (intp *edatInterpreter) InterpretCommand(line string) {
	line = strings.Trim(line, "\x00 \t")
	command, rest := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		command, rest = line[:i], strings.TrimSpace(line[i+1:])
	}
	tracer().P("cmd", command).Debugf("interpreting %q", rest)
	switch command {
	case "load":
		if rest == "" {
			intp.fail(fmt.Errorf("usage: load <file>"))
			return
		}
		intp.load(rest)
	case "show":
		intp.show(rest)
	case "set":
		intp.set(rest)
	case "types":
		if err := listTypes(intp.out); err != nil {
			intp.fail(err)
		}
	case "clear":
		intp.current, intp.source = table.New(), ""
	default:
		intp.fail(fmt.Errorf("unknown command %q, try 'help'", command))
	}
}

func (intp *edatInterpreter) load(path string) {
	tbl, err := edat.ParseFile(path, intp.suite, grammar.WithReporter(reportTo(intp.errout)))
	if tbl == nil {
		intp.fail(err)
		return
	}
	intp.current, intp.source = tbl, path
	fmt.Fprintf(intp.errout, "▶ loaded %d entries from %s\n", tbl.Len(), path)
}

func (intp *edatInterpreter) show(path string) {
	if path == "" {
		if _, err := intp.formatter.Format(tableWriter(intp.source, intp.current), intp.out); err != nil {
			intp.fail(err)
		}
		return
	}
	value, ok := intp.current.Lookup(path)
	if !ok {
		intp.fail(fmt.Errorf("no entry %q", path))
		return
	}
	if _, err := intp.formatter.Format(value, intp.out); err != nil {
		intp.fail(err)
	}
}

// set parses input into the current table. Clone sources refer to entries of
// the current table.
func (intp *edatInterpreter) set(input string) {
	if input == "" {
		intp.fail(fmt.Errorf("usage: set <entry>"))
		return
	}
	p := grammar.NewParser(intp.suite,
		grammar.WithTable(intp.current),
		grammar.WithSourceName("input"),
		grammar.WithReporter(reportTo(intp.errout)),
	)
	_, _ = p.Parse(input) // diagnostics have been printed by the reporter
}

func (intp *edatInterpreter) fail(err error) {
	_, _ = intp.formatter.Format(err, intp.errout)
}
