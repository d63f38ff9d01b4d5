package table

import "strings"

// PathSeparator separates the names of nested tables in a path.
const PathSeparator = "."

// Lookup finds a value by a dotted path, e.g. "outer.inner.x". Every
// path component but the last has to name a nested table (*Table).
func (t *Table) Lookup(path string) (interface{}, bool) {
	parent, name, ok := t.walk(path)
	if !ok {
		return nil, false
	}
	return parent.Value(name)
}

// Path returns the value of type T at a dotted path, see Lookup.
func Path[T any](t *Table, path string) (T, bool) {
	parent, name, ok := t.walk(path)
	if !ok {
		var zero T
		return zero, false
	}
	return Get[T](parent, name)
}

// walk descends into nested tables along path and returns the innermost
// table together with the last path component.
func (t *Table) walk(path string) (*Table, string, bool) {
	if path == "" {
		return nil, "", false
	}
	components := strings.Split(path, PathSeparator)
	for _, c := range components {
		if c == "" {
			return nil, "", false
		}
	}
	last := len(components) - 1
	for _, c := range components[:last] {
		sub, ok := Get[*Table](t, c)
		if !ok || sub == nil {
			tracer().P("path", path).Debugf("no table %q", c)
			return nil, "", false
		}
		t = sub
	}
	return t, components[last], true
}
