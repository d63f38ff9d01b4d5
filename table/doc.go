/*
Package table implements a container for named values of heterogeneous type.

A table stores values of arbitrary Go types under string keys. There is no
closed enumeration of value types: every Go type gets its own storage pool
the first time a value of that type is put into a table, and values are
retrieved by naming the expected type:

   tbl := table.New()
   table.Set(tbl, "width", 10)
   table.Set(tbl, "ratio", 0.75)
   w, ok := table.Get[int](tbl, "width")      // 10, true
   _, ok = table.Get[float64](tbl, "width")   // false: no implicit conversion

Names are unique within a table. Setting a name again replaces its value,
keeping the position of the name in the table's insertion order. Iterating
all values of a type (see All) visits them in insertion order across all
types, not in per-pool order.

Tables may contain tables (as *Table values). Clone creates a deep copy of a
table, including nested tables.

A table is not safe for concurrent mutation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package table

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'edat.table'.
func tracer() tracing.Trace {
	return tracing.Select("edat.table")
}
