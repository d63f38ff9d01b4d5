package table

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPathLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.table")
	defer teardown()
	//
	inner := New()
	Set(inner, "x", 7)
	outer := New()
	Set(outer, "inner", inner)
	root := New()
	Set(root, "outer", outer)
	Set(root, "flat", 1.5)
	//
	for i, test := range []struct {
		path string
		ok   bool
	}{
		{"outer.inner.x", true},
		{"outer.inner", true},
		{"flat", true},
		{"flat.x", false},
		{"outer..x", false},
		{"", false},
		{"outer.nope.x", false},
	} {
		if _, ok := root.Lookup(test.path); ok != test.ok {
			t.Errorf("test %d: lookup of %q: expected %v, have %v", i, test.path, test.ok, ok)
		}
	}
	if x, ok := Path[int](root, "outer.inner.x"); !ok || x != 7 {
		t.Errorf("expected outer.inner.x = 7, have %d", x)
	}
	if _, ok := Path[float64](root, "outer.inner.x"); ok {
		t.Error("expected typed path lookup to respect the value type")
	}
}
