/*
Package edat reads EDAT, a small text format for named, typed and nested
values, into tables.

	base = {
	    width:int = "80"
	}
	wide <- base = {
	    width:int = "132"
	}

Parsing is done by package grammar, storage by package table. Type tags are
mapped to Go types by the converters of a convert.Suite; package stdtypes
provides converters for "int", "float", "str", "bool" and "decimal".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package edat

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/edat/convert"
	"github.com/npillmayer/edat/grammar"
	"github.com/npillmayer/edat/stdtypes"
	"github.com/npillmayer/edat/table"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}

// ParseString parses EDAT text into a table. If suite is nil, the standard
// converters of package stdtypes are used.
//
// After a syntax error the table holds everything parsed before the error,
// and the error is a *grammar.Diagnostic.
func ParseString(input string, suite *convert.Suite, opts ...grammar.Option) (*table.Table, error) {
	if suite == nil {
		suite = stdtypes.NewSuite()
	}
	return grammar.NewParser(suite, opts...).Parse(input)
}

// ParseFile reads a file as a whole and parses its content, using the file
// path as source name for diagnostics. See ParseString.
func ParseFile(path string, suite *convert.Suite, opts ...grammar.Option) (*table.Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading EDAT input: %w", err)
	}
	opts = append([]grammar.Option{grammar.WithSourceName(path)}, opts...)
	return ParseString(string(content), suite, opts...)
}
