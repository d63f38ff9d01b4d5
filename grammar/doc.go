/*
Package grammar implements the parser for EDAT text.

EDAT text is a sequence of named entries. A leaf entry carries a type tag and
a quoted value (or an array of quoted values); a subtable entry carries a
braced body of further entries and may be seeded with a deep copy of a
sibling table:

	Table     →  Body
	Body      →  { Entry Terminator | BlankLine }
	Entry     →  LeafEntry | SubtableEntry
	LeafEntry →  Name ':' Type [ '[' Digits? ']' ] '=' Value
	Value     →  '"' chars '"'  |  '[' { '"' chars '"' [','] } ']'
	Subtable  →  Name [ '<-' Name ] '=' '{' Body '}'
	Terminator → ';' | line break | end of input | (lookahead) '}'

Example:

	base = {
	    width:int = "80"
	}
	wide <- base = {
	    width:int = "132"
	}
	ratios:float[] = ["1.0", "2.0", "3.0"]

Values are handed to the converter registered for their type tag; the
parser itself never interprets value text. Problems are reported as
diagnostics: syntax errors stop the enclosing level, unknown type tags and
failed conversions are warnings and parsing continues with the next entry.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'edat.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("edat.grammar")
}
