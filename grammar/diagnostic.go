package grammar

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// DiagnosticKind classifies problems found during parsing.
type DiagnosticKind int8

const (
	SyntaxError      DiagnosticKind = iota // input does not match the grammar
	UnknownTypeTag                         // no converter registered for a type tag
	ConversionFailed                       // converter rejected a value
)

func (k DiagnosticKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case UnknownTypeTag:
		return "unknown type"
	case ConversionFailed:
		return "conversion failed"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Severity tells if a diagnostic stops parsing of a table body.
type Severity int8

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is a problem found in EDAT text. It implements the error
// interface.
type Diagnostic struct {
	Kind     DiagnosticKind
	Pos      Position
	Source   string // name of the input, if any
	Path     string // path of the enclosing table, "" for the top level
	Msg      string
	LineText string // the source line containing Pos
}

// Severity returns Error for syntax errors and Warning otherwise.
func (d *Diagnostic) Severity() Severity {
	if d.Kind == SyntaxError {
		return Error
	}
	return Warning
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	if d.Source != "" {
		b.WriteString(d.Source)
		b.WriteByte(':')
	}
	fmt.Fprintf(&b, "%s: %s: %s", d.Pos, d.Kind, d.Msg)
	if d.Path != "" {
		fmt.Fprintf(&b, " (in %s)", d.Path)
	}
	return b.String()
}

// Snippet renders the offending source line, prefixed with its line number,
// and a caret pointing to the column of the diagnostic:
//
//	   3 | ratio:float = 1.5
//	     |               ^
func (d *Diagnostic) Snippet() string {
	prefix := fmt.Sprintf("%4d | ", d.Pos.Line)
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(d.LineText)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", len(prefix)-2))
	b.WriteString("| ")
	b.WriteString(caretPadding(d.LineText, d.Pos.Column))
	b.WriteString("^\n")
	return b.String()
}

// caretPadding returns blanks covering the first column-1 runes of line.
// Tabs are kept and wide runes take two cells, so the caret lines up on a
// terminal.
func caretPadding(line string, column int) string {
	var b strings.Builder
	col := 1
	for _, r := range line {
		if col >= column {
			break
		}
		switch {
		case r == '\t':
			b.WriteByte('\t')
		case isWide(r):
			b.WriteString("  ")
		default:
			b.WriteByte(' ')
		}
		col++
	}
	for ; col < column; col++ { // column beyond end of line
		b.WriteByte(' ')
	}
	return b.String()
}

func isWide(r rune) bool {
	k := width.LookupRune(r).Kind()
	return k == width.EastAsianWide || k == width.EastAsianFullwidth
}
