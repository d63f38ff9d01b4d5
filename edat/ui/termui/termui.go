// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'edat.cli'.
func trace() tracing.Trace {
	return tracing.Select("edat.cli")
}

// Formatter writes an item to w. It returns false if it does not know how to
// format the item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats strings, errors and go-pretty tables. Everything
// else is shown by its Go type and value.
type DefaultFormatter struct{}

func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case string:
		_, err := fmt.Fprintf(w, "▶ %s\n", t)
		return err == nil, err
	case error:
		_, err := fmt.Fprintf(w, "%s %s\n", prtxt.FgRed.Sprint("Error:"), t.Error())
		return err == nil, err
	case table.Writer:
		if t == nil {
			_, err := io.WriteString(w, "▶ (empty table)\n")
			return err == nil, err
		}
		_, err := fmt.Fprintf(w, "%s\n", t.Render())
		return err == nil, err
	default:
		_, err := fmt.Fprintf(w, "▶ %v (%T)\n", t, t)
		return err == nil, err
	}
}
