package grammar

import (
	"fmt"

	"github.com/npillmayer/edat/convert"
	"github.com/npillmayer/edat/table"
)

// Parser reads EDAT text into tables. Values are converted by the converters
// of a suite, selected by type tag.
//
// A parser may be used for more than one input, one after the other. It is
// not safe for concurrent use.
type Parser struct {
	suite    *convert.Suite
	source   string            // name of the input, for diagnostics
	reporter func(*Diagnostic) // called for every diagnostic, may be nil
	target   *table.Table      // top-level table to parse into, may be nil
	scopes   scopeStack
	diags    []*Diagnostic
}

// Option configures a parser.
type Option func(*Parser)

// WithSourceName sets the name of the input (usually a file name), which will
// be part of diagnostic messages.
func WithSourceName(name string) Option {
	return func(p *Parser) {
		p.source = name
	}
}

// WithReporter sets a function to be called for every diagnostic, as soon as
// it is found.
func WithReporter(r func(*Diagnostic)) Option {
	return func(p *Parser) {
		p.reporter = r
	}
}

// WithTable makes the parser store top-level entries in tbl instead of a new
// table. Clone sources at the top level are looked up in tbl as well.
func WithTable(tbl *table.Table) Option {
	return func(p *Parser) {
		p.target = tbl
	}
}

// NewParser creates a parser using the converters of suite.
func NewParser(suite *convert.Suite, opts ...Option) *Parser {
	p := &Parser{
		suite:  suite,
		scopes: newScopeStack(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse is a shortcut for NewParser(suite).Parse(input).
func Parse(input string, suite *convert.Suite) (*table.Table, error) {
	return NewParser(suite).Parse(input)
}

// Parse reads input and returns the resulting table. The table is never nil:
// after a syntax error it holds the entries parsed up to the error, and the
// error (a *Diagnostic) is returned as well. Warnings do not produce an
// error; they are available from Diagnostics.
func (p *Parser) Parse(input string) (*table.Table, error) {
	p.diags = nil
	p.scopes.Clear()
	c := NewCursor(input)
	tbl := p.parseBody(&c, p.target, "")
	tracer().Debugf("parsed %d top-level entries with %d diagnostics", tbl.Len(), len(p.diags))
	for _, d := range p.diags {
		if d.Severity() == Error {
			return tbl, d
		}
	}
	return tbl, nil
}

// Diagnostics returns all diagnostics of the most recent call to Parse,
// in order of appearance.
func (p *Parser) Diagnostics() []*Diagnostic {
	return p.diags
}

// parseBody parses entries into a table until the end of the input (top level)
// or a closing '}' (nested bodies). A non-nil seed is used as the table to
// start with. After a syntax error it returns immediately with everything
// parsed so far. The enclosing level is not notified and continues at the
// position the error left the cursor.
func (p *Parser) parseBody(c *Cursor, seed *table.Table, name string) *table.Table {
	tbl := seed
	if tbl == nil {
		tbl = table.New()
	}
	p.scopes.PushFrame(name, tbl)
	defer p.scopes.PopFrame()
	nested := p.scopes.Depth() > 1
	for {
		c.skipWhitespace()
		if c.AtEOF() {
			if nested {
				p.syntaxError(*c, "unexpected end of input, missing '}'")
			}
			return tbl
		}
		if next, _ := c.Peek(); next == '}' {
			if !nested {
				p.syntaxError(*c, "unexpected '}' at top level")
				return tbl
			}
			c.advance(1)
			return tbl
		}
		if c.skipLineBreaks() {
			continue // blank line
		}
		if !p.parseEntry(c) || !p.parseTerminator(c) {
			return tbl
		}
	}
}

// parseEntry parses a leaf entry or a subtable entry.
func (p *Parser) parseEntry(c *Cursor) bool {
	at := *c
	name := c.scanName()
	if name == "" {
		p.syntaxError(at, "expected name")
		return false
	}
	tracer().P("entry", name).Debugf("parsing entry")
	c.skipWhitespace()
	if c.skipChar(':') {
		return p.parseLeaf(c, name)
	}
	return p.parseSubtable(c, name)
}

// parseLeaf parses the part of a leaf entry following the ':'.
func (p *Parser) parseLeaf(c *Cursor, name string) bool {
	c.skipWhitespace()
	tagAt := *c
	tag := c.scanName()
	if tag == "" {
		p.syntaxError(tagAt, "expected type name after ':'")
		return false
	}
	c.skipWhitespace()
	size, err := c.scanArraySpecifier()
	if err != nil {
		p.syntaxError(*c, "malformed array specifier: %v", err)
		return false
	}
	c.skipWhitespace()
	if !c.skipChar('=') {
		p.syntaxError(*c, "no assignment operator '=' after type")
		return false
	}
	c.skipWhitespace()
	valueAt := *c
	if size >= 0 {
		texts, ok := p.parseArrayValue(c)
		if !ok {
			return false
		}
		if conv := p.resolve(tagAt, tag); conv != nil {
			if err := conv.ConvertArray(name, texts, p.scopes.Current().table); err != nil {
				p.warn(ConversionFailed, valueAt, "%s:%s[]: %v", name, tag, err)
			}
		}
		return true
	}
	text, err := c.scanQuoted()
	if err != nil {
		p.syntaxError(valueAt, "%v", err)
		return false
	}
	if conv := p.resolve(tagAt, tag); conv != nil {
		if err := conv.ConvertValue(name, text, p.scopes.Current().table); err != nil {
			p.warn(ConversionFailed, valueAt, "%s:%s: %v", name, tag, err)
		}
	}
	return true
}

// parseArrayValue parses "[" { quoted [","] } "]". Elements may be separated
// by blanks, line breaks or commas.
func (p *Parser) parseArrayValue(c *Cursor) ([]string, bool) {
	if !c.skipChar('[') {
		p.syntaxError(*c, "no array start '['")
		return nil, false
	}
	texts := []string{}
	for {
		c.skipBlank()
		if c.AtEOF() {
			p.syntaxError(*c, "unexpected end of input, missing ']'")
			return nil, false
		}
		if c.skipChar(']') {
			return texts, true
		}
		at := *c
		text, err := c.scanQuoted()
		if err != nil {
			p.syntaxError(at, "array element #%d: %v", len(texts), err)
			return nil, false
		}
		texts = append(texts, text)
		c.skipBlank()
		c.skipChar(',')
	}
}

// parseSubtable parses the part of a subtable entry following the name.
func (p *Parser) parseSubtable(c *Cursor, name string) bool {
	var seed *table.Table
	if c.skipCloneOperator() {
		at := *c
		source := c.scanName()
		if source == "" {
			p.syntaxError(at, "expected name of table to copy after '<-'")
			return false
		}
		if src, ok := table.Get[*table.Table](p.scopes.Current().table, source); ok && src != nil {
			seed = src.Clone()
		} else {
			tracer().P("entry", name).Debugf("no table %q to copy, starting empty", source)
		}
		c.skipWhitespace()
	}
	if !c.skipChar('=') {
		p.syntaxError(*c, "expected ':' or '=' after name %q", name)
		return false
	}
	c.skipBlank()
	if !c.skipChar('{') {
		p.syntaxError(*c, "expected '{' to start table %q", name)
		return false
	}
	parent := p.scopes.Current().table
	sub := p.parseBody(c, seed, name)
	table.Set(parent, name, sub)
	return true
}

// parseTerminator checks for the end of an entry: a ';', a line break, the
// end of input, or a '}' closing the enclosing body. After at least one blank,
// the start of the next entry terminates as well.
func (p *Parser) parseTerminator(c *Cursor) bool {
	blank := c.skipWhitespace()
	if c.AtEOF() || c.skipChar(';') || c.skipLineBreaks() {
		return true
	}
	next, _ := c.Peek()
	if next == '}' || blank && isNameChar(next) {
		return true
	}
	p.syntaxError(*c, "no end of assignment, found '%c'", next)
	return false
}

func (p *Parser) resolve(at Cursor, tag string) convert.Converter {
	conv, ok := p.suite.Resolve(tag)
	if !ok {
		p.warn(UnknownTypeTag, at, "no converter for type %q", tag)
		return nil
	}
	return conv
}

func (p *Parser) syntaxError(at Cursor, format string, args ...interface{}) {
	p.report(SyntaxError, at, format, args...)
}

func (p *Parser) warn(kind DiagnosticKind, at Cursor, format string, args ...interface{}) {
	p.report(kind, at, format, args...)
}

func (p *Parser) report(kind DiagnosticKind, at Cursor, format string, args ...interface{}) {
	d := &Diagnostic{
		Kind:     kind,
		Pos:      at.Position(),
		Source:   p.source,
		Path:     p.scopes.Path(),
		Msg:      fmt.Sprintf(format, args...),
		LineText: at.CurrentLine(),
	}
	p.diags = append(p.diags, d)
	if d.Severity() == Error {
		tracer().Errorf("%s\n%s", d.Error(), d.Snippet())
	} else {
		tracer().Infof("%s", d.Error())
	}
	if p.reporter != nil {
		p.reporter(d)
	}
}
