/*
Package convert defines the protocol for turning quoted value text into
typed values, and a registry of converters keyed by type tag.

The type tags appearing in input text ("int", "float", …) are not known to
the parser. Clients register a Converter for every tag they want to support:

   suite := convert.NewSuite()
   convert.AddFunc(suite, "int", strconv.Atoi)

A converter stores its result directly into a table, using the Go type of
its choice for scalars and for arrays. The parser resolves a converter for
each typed entry it reads; a missing converter is not an error of the input
as a whole, but just makes the parser skip the entry.

A Suite is read-only during parsing and may be shared between parses running
concurrently, provided all registrations happen before. There is no
internal synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package convert

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'edat.convert'.
func tracer() tracing.Trace {
	return tracing.Select("edat.convert")
}
