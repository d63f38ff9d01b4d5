package table

import (
	"reflect"
	"unsafe"
)

// pool is the homogeneous storage for all values of exactly one Go type.
// Records of a table point into pools by (pool index, slot).
type pool interface {
	Type() reflect.Type         // the type of values held by this pool
	value(slot int) interface{} // value at slot, boxed
	release(slot int)           // make a slot available for re-use
	live() int                  // number of slots in use
	clone() pool                // deep copy of the pool
}

// typedPool is the pool implementation for values of type T.
// Slots are never moved; released slots are zeroed and re-used by later puts.
type typedPool[T any] struct {
	typ    reflect.Type
	values []T
	free   []int
}

func newPool[T any]() *typedPool[T] {
	return &typedPool[T]{typ: typeOf[T]()}
}

// typeOf returns the reflect.Type of T. It works for interface types as well,
// which reflect.TypeOf(v) would not.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (p *typedPool[T]) Type() reflect.Type {
	return p.typ
}

func (p *typedPool[T]) put(v T) int {
	if n := len(p.free); n > 0 {
		slot := p.free[n-1]
		p.free = p.free[:n-1]
		p.values[slot] = v
		return slot
	}
	p.values = append(p.values, v)
	return len(p.values) - 1
}

func (p *typedPool[T]) value(slot int) interface{} {
	return p.values[slot]
}

func (p *typedPool[T]) release(slot int) {
	var zero T
	p.values[slot] = zero
	p.free = append(p.free, slot)
}

func (p *typedPool[T]) live() int {
	return len(p.values) - len(p.free)
}

func (p *typedPool[T]) clone() pool {
	c := &typedPool[T]{
		typ:    p.typ,
		values: make([]T, len(p.values)),
		free:   append([]int(nil), p.free...),
	}
	for i, v := range p.values {
		c.values[i] = deepCopy(v)
	}
	return c
}

// --- Deep copies -----------------------------------------------------------

// Cloner is implemented by values which have to be deep-copied whenever the
// table holding them is cloned. *Table is a Cloner.
//
// CloneValue must return a value of the same dynamic type as the receiver.
type Cloner interface {
	CloneValue() interface{}
}

// deepCopy copies v so that the copy shares no mutable state reachable
// through Cloners, slices, maps, interfaces, arrays or struct fields with v.
// Unexported struct fields are copied as well. Pointers which are not Cloners
// are copied the way Go assigns them.
func deepCopy[T any](v T) T {
	cp := copyValue(reflect.ValueOf(&v).Elem())
	if c, ok := cp.Interface().(T); ok {
		return c
	}
	return v
}

func copyValue(rv reflect.Value) reflect.Value {
	if rv.CanInterface() {
		if c, ok := rv.Interface().(Cloner); ok {
			cv := reflect.ValueOf(c.CloneValue())
			if cv.IsValid() && cv.Type().AssignableTo(rv.Type()) {
				out := reflect.New(rv.Type()).Elem()
				out.Set(cv)
				return out
			}
			return rv
		}
	}
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			cp.Index(i).Set(copyValue(rv.Index(i)))
		}
		return cp
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		cp := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			cp.SetMapIndex(iter.Key(), copyValue(iter.Value()))
		}
		return cp
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(copyValue(rv.Elem()))
		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		out.Set(rv)
		for i := 0; i < out.Len(); i++ {
			elem := settable(out.Index(i))
			elem.Set(copyValue(elem))
		}
		return out
	case reflect.Struct:
		out := reflect.New(rv.Type()).Elem()
		out.Set(rv)
		for i := 0; i < out.NumField(); i++ {
			field := settable(out.Field(i))
			field.Set(copyValue(field))
		}
		return out
	}
	return rv
}

// settable returns an addressable value v as settable, including values
// reached through unexported struct fields.
func settable(v reflect.Value) reflect.Value {
	if v.CanSet() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}
