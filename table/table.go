package table

import (
	"fmt"
	"reflect"
	"strings"
)

// Table is an ordered collection of named values of heterogeneous types.
//
// Every name maps to exactly one record. A record points into the pool
// for the Go type of its value. Records are kept in insertion order, pools
// are created on demand, one per type.
//
// The zero value is an empty table ready to use.
type Table struct {
	records []record             // in insertion order
	index   map[string]int       // name → index into records
	types   map[reflect.Type]int // type → index into pools
	pools   []pool
}

type record struct {
	name string
	pool int // index into pools, the type id of the record
	slot int // index into the pool
}

// New creates an empty table.
func New() *Table {
	t := &Table{}
	t.init()
	return t
}

func (t *Table) init() {
	if t.index == nil {
		t.index = make(map[string]int)
		t.types = make(map[reflect.Type]int)
	}
}

// poolFor finds the pool for values of type T. If none exists and create is
// set, a new pool is allocated and its index becomes the type id for T.
func poolFor[T any](t *Table, create bool) (*typedPool[T], int) {
	typ := typeOf[T]()
	if pid, ok := t.types[typ]; ok {
		return t.pools[pid].(*typedPool[T]), pid
	}
	if !create {
		return nil, -1
	}
	p := newPool[T]()
	pid := len(t.pools)
	t.pools = append(t.pools, p)
	t.types[typ] = pid
	tracer().P("type", typ).Debugf("new pool #%d", pid)
	return p, pid
}

// Set puts value under name into table t.
//
// If name is already present with a value of type T, the value is replaced
// in place. If name is present with a value of a different type, the record
// keeps its position in the insertion order, the old value is dropped and
// value moves into the pool for T. Otherwise a new record is appended.
func Set[T any](t *Table, name string, value T) {
	t.init()
	p, pid := poolFor[T](t, true)
	if r, ok := t.index[name]; ok {
		rec := &t.records[r]
		if rec.pool == pid {
			p.values[rec.slot] = value
			return
		}
		old := t.pools[rec.pool]
		tracer().P("name", name).Debugf("value changes type from %s to %s", old.Type(), p.typ)
		old.release(rec.slot)
		rec.pool, rec.slot = pid, p.put(value)
		return
	}
	t.index[name] = len(t.records)
	t.records = append(t.records, record{name: name, pool: pid, slot: p.put(value)})
}

// Get returns the value stored under name, if it is of type T.
// A value of any other type is reported as absent.
func Get[T any](t *Table, name string) (value T, ok bool) {
	if t == nil {
		return
	}
	r, found := t.index[name]
	if !found {
		return
	}
	p, pid := poolFor[T](t, false)
	if p == nil || t.records[r].pool != pid {
		return
	}
	return p.values[t.records[r].slot], true
}

// GetOr returns the value of type T stored under name, or def if there is none.
func GetOr[T any](t *Table, name string, def T) T {
	if v, ok := Get[T](t, name); ok {
		return v
	}
	return def
}

// All calls visit for every value of type T in t, in insertion order.
// Values of other types are skipped. If t never held a value of type T,
// visit is not called.
func All[T any](t *Table, visit func(name string, value T)) {
	if t == nil {
		return
	}
	p, pid := poolFor[T](t, false)
	if p == nil {
		return
	}
	for _, rec := range t.records {
		if rec.pool == pid {
			visit(rec.name, p.values[rec.slot])
		}
	}
}

// Each calls visit for every value in t, in insertion order.
func (t *Table) Each(visit func(name string, value interface{})) {
	if t == nil {
		return
	}
	for _, rec := range t.records {
		visit(rec.name, t.pools[rec.pool].value(rec.slot))
	}
}

// Len returns the number of names in t.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Names returns the names in t in insertion order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.records))
	for i, rec := range t.records {
		names[i] = rec.name
	}
	return names
}

// Has is a predicate: is there a value of any type stored under name?
func (t *Table) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[name]
	return ok
}

// TypeOf returns the type of the value stored under name, or nil.
func (t *Table) TypeOf(name string) reflect.Type {
	if t == nil {
		return nil
	}
	r, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.pools[t.records[r].pool].Type()
}

// Value returns the value stored under name as an interface{}.
func (t *Table) Value(name string) (interface{}, bool) {
	if t == nil {
		return nil, false
	}
	r, ok := t.index[name]
	if !ok {
		return nil, false
	}
	rec := t.records[r]
	return t.pools[rec.pool].value(rec.slot), true
}

// Clone returns a deep copy of t. Nested tables, slices, maps, arrays and
// struct fields are copied as well, so no modification of the clone is
// visible in t and vice versa.
func (t *Table) Clone() *Table {
	c := New()
	if t == nil {
		return c
	}
	c.records = append(c.records, t.records...)
	for name, r := range t.index {
		c.index[name] = r
	}
	for typ, pid := range t.types {
		c.types[typ] = pid
	}
	c.pools = make([]pool, len(t.pools))
	for i, p := range t.pools {
		c.pools[i] = p.clone()
	}
	return c
}

// CloneValue is part of interface Cloner.
func (t *Table) CloneValue() interface{} {
	if t == nil {
		return t
	}
	return t.Clone()
}

var _ Cloner = (*Table)(nil)

func (t *Table) String() string {
	if t == nil {
		return "table<nil>"
	}
	var b strings.Builder
	b.WriteString("table{")
	for i, rec := range t.records {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%s", rec.name, t.pools[rec.pool].Type())
	}
	b.WriteString("}")
	return b.String()
}
