package grammar

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/edat/convert"
	"github.com/npillmayer/edat/stdtypes"
	"github.com/npillmayer/edat/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `anotherThing:float = "42.123"
ScientificNumber : float = "1e5"
nums:float[] = ["1.0", "2.0", "3.0"]
base = {
  a:int = "1"
}
derived <- base = {
  a:int = "2"
  b:int = "3"
}
`

func TestParseScalars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	tbl, err := Parse(`i:int = "-77"
f:float = "1e5"
s:str = "hello world"
b:bool = "true"
d:decimal = "42.123"
`, stdtypes.NewSuite())
	require.NoError(t, err)
	assert.Equal(t, -77, table.GetOr(tbl, "i", 0))
	assert.Equal(t, 1e5, table.GetOr(tbl, "f", 0.0))
	assert.Equal(t, "hello world", table.GetOr(tbl, "s", ""))
	assert.Equal(t, true, table.GetOr(tbl, "b", false))
	d, ok := table.Get[decimal.Decimal](tbl, "d")
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("42.123")))
	assert.Equal(t, []string{"i", "f", "s", "b", "d"}, tbl.Names())
}

func TestParseSample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	tbl, err := Parse(sample, stdtypes.NewSuite())
	require.NoError(t, err)
	assert.Equal(t, 42.123, table.GetOr(tbl, "anotherThing", 0.0))
	assert.Equal(t, 1e5, table.GetOr(tbl, "ScientificNumber", 0.0))
	assert.Equal(t, []float64{1, 2, 3}, table.GetOr[[]float64](tbl, "nums", nil))
	base, ok := table.Get[*table.Table](tbl, "base")
	require.True(t, ok)
	derived, ok := table.Get[*table.Table](tbl, "derived")
	require.True(t, ok)
	assert.Equal(t, 1, table.GetOr(base, "a", 0))
	assert.Equal(t, 2, table.GetOr(derived, "a", 0))
	assert.Equal(t, 3, table.GetOr(derived, "b", 0))
	assert.False(t, base.Has("b"))
	// derived is a copy, not an alias
	table.Set(derived, "a", 99)
	assert.Equal(t, 1, table.GetOr(base, "a", 0))
}

func TestParseNestedTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	tbl, err := Parse(`outer = { inner:int = "5" }`, stdtypes.NewSuite())
	require.NoError(t, err)
	outer, ok := table.Get[*table.Table](tbl, "outer")
	require.True(t, ok)
	assert.Equal(t, 5, table.GetOr(outer, "inner", 0))
	v, ok := table.Path[int](tbl, "outer.inner")
	assert.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestParseCloneIsDeep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	tbl, err := Parse(`base = {
  inner = { v:int = "1" }
  list:int[] = ["1", "2"]
}
derived <- base = { w:int = "2" }
`, stdtypes.NewSuite())
	require.NoError(t, err)
	dInner, ok := table.Path[*table.Table](tbl, "derived.inner")
	require.True(t, ok)
	table.Set(dInner, "v", 42)
	dList, ok := table.Path[[]int](tbl, "derived.list")
	require.True(t, ok)
	dList[0] = 42
	v, _ := table.Path[int](tbl, "base.inner.v")
	assert.Equal(t, 1, v)
	list, _ := table.Path[[]int](tbl, "base.list")
	assert.Equal(t, []int{1, 2}, list)
	_, ok = table.Path[int](tbl, "base.w")
	assert.False(t, ok)
}

func TestParseCloneOverrideWithOtherType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	tbl, err := Parse(`base = { a:int = "1"; b:str = "x" }
derived <- base = { a:str = "one" }
`, stdtypes.NewSuite())
	require.NoError(t, err)
	derived, _ := table.Get[*table.Table](tbl, "derived")
	require.NotNil(t, derived)
	assert.Equal(t, []string{"a", "b"}, derived.Names())
	_, ok := table.Get[int](derived, "a")
	assert.False(t, ok)
	assert.Equal(t, "one", table.GetOr(derived, "a", ""))
}

func TestParseUnresolvedCloneSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	p := NewParser(stdtypes.NewSuite())
	tbl, err := p.Parse(`x:int = "1"
d1 <- nope = { a:int = "1" }
d2 <- x = { }
`)
	require.NoError(t, err)
	assert.Empty(t, p.Diagnostics())
	d1, _ := table.Get[*table.Table](tbl, "d1")
	require.NotNil(t, d1)
	assert.Equal(t, []string{"a"}, d1.Names())
	d2, _ := table.Get[*table.Table](tbl, "d2")
	require.NotNil(t, d2)
	assert.Equal(t, 0, d2.Len())
}

func TestParseArrays(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	tbl, err := Parse(`vals:float[] = ["1.0","2.0"]
empty:float[] = []
sized:int[4] = ["1", "2"]
multi:str[] = [
  "a"
  "b",
  "c"
]
`, stdtypes.NewSuite())
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 2.0}, table.GetOr[[]float64](tbl, "vals", nil))
	empty, ok := table.Get[[]float64](tbl, "empty")
	require.True(t, ok)
	assert.Empty(t, empty)
	assert.Equal(t, []int{1, 2}, table.GetOr[[]int](tbl, "sized", nil))
	assert.Equal(t, []string{"a", "b", "c"}, table.GetOr[[]string](tbl, "multi", nil))
}

func TestParseTerminators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	for i, input := range []string{
		`a:int="1";b:int="2"`,
		`a:int = "1" b:int = "2"`,
		"a:int = \"1\"\r\nb:int = \"2\"\r\n",
		"a:int = \"1\";\n\n\nb:int = \"2\";",
		"t = {\n a:int=\"1\"; b:int=\"2\" }",
	} {
		tbl, err := Parse(input, stdtypes.NewSuite())
		assert.NoError(t, err, "test %d", i)
		if strings.HasPrefix(input, "t") {
			tbl, _ = table.Get[*table.Table](tbl, "t")
			require.NotNil(t, tbl, "test %d", i)
		}
		assert.Equal(t, 1, table.GetOr(tbl, "a", 0), "test %d", i)
		assert.Equal(t, 2, table.GetOr(tbl, "b", 0), "test %d", i)
	}
}

func TestParseUnknownTypeTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	p := NewParser(stdtypes.NewSuite())
	tbl, err := p.Parse("x:nope = \"1\"\narr:nope[] = [\"1\"]\ny:int = \"2\"\n")
	require.NoError(t, err)
	assert.False(t, tbl.Has("x"))
	assert.False(t, tbl.Has("arr"))
	assert.Equal(t, 2, table.GetOr(tbl, "y", 0))
	diags := p.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, UnknownTypeTag, diags[0].Kind)
	assert.Equal(t, Warning, diags[0].Severity())
	assert.Equal(t, 1, diags[0].Pos.Line)
	assert.Equal(t, 3, diags[0].Pos.Column)
	assert.Equal(t, 2, diags[1].Pos.Line)
}

func TestParseConversionFailed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	p := NewParser(stdtypes.NewSuite())
	tbl, err := p.Parse("x:int = \"abc\"\nys:int[] = [\"1\", \"b\"]\nz:int = \"3\"")
	require.NoError(t, err)
	assert.False(t, tbl.Has("x"))
	assert.False(t, tbl.Has("ys"))
	assert.Equal(t, 3, table.GetOr(tbl, "z", 0))
	diags := p.Diagnostics()
	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.Equal(t, ConversionFailed, d.Kind)
	}
	assert.Equal(t, 9, diags[0].Pos.Column)
}

func TestParseMissingClosingBrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	p := NewParser(stdtypes.NewSuite())
	tbl, err := p.Parse("first:int = \"0\"\nouter = {\n  inner:int = \"5\"\n")
	require.Error(t, err)
	var d *Diagnostic
	require.True(t, errors.As(err, &d))
	assert.Equal(t, SyntaxError, d.Kind)
	assert.Equal(t, "outer", d.Path)
	assert.Len(t, p.Diagnostics(), 1)
	assert.Equal(t, 0, table.GetOr(tbl, "first", -1))
	outer, ok := table.Get[*table.Table](tbl, "outer")
	require.True(t, ok)
	assert.Equal(t, 5, table.GetOr(outer, "inner", 0))
}

func TestParseSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input  string
		line   int
		column int
	}{
		{input: `x:int "1"`, line: 1, column: 7},
		{input: `x:int`, line: 1, column: 6},
		{input: `x:`, line: 1, column: 3},
		{input: `:int = "1"`, line: 1, column: 1},
		{input: "ok:int = \"1\"\nt = x", line: 2, column: 5},
		{input: `t "x"`, line: 1, column: 3},
		{input: `x:int = "1" "2"`, line: 1, column: 13},
		{input: `x:float[] = "1"`, line: 1, column: 13},
		{input: `x:int = "1`, line: 1, column: 9},
		{input: `x:float[ = []`, line: 1, column: 10},
		{input: `x:float[] = ["1", "2"`, line: 1, column: 22},
		{input: `x:float[] = ["1", 2]`, line: 1, column: 19},
		{input: "a:int = \"1\"\n}", line: 2, column: 1},
		{input: `d <- = {}`, line: 1, column: 6},
		{input: `t = {`, line: 1, column: 6},
	} {
		tbl, err := Parse(x.input, stdtypes.NewSuite())
		require.NotNil(t, tbl, "test %d", i)
		var d *Diagnostic
		if !assert.True(t, errors.As(err, &d), "test %d: expected syntax error for %q", i, x.input) {
			continue
		}
		assert.Equal(t, SyntaxError, d.Kind, "test %d", i)
		assert.Equal(t, Error, d.Severity(), "test %d", i)
		assert.Equal(t, x.line, d.Pos.Line, "test %d: %v", i, d)
		assert.Equal(t, x.column, d.Pos.Column, "test %d: %v", i, d)
	}
}

func TestParseTruncatedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	input := sample + `sized:int[3] = ["1", "2"]
d2 <- derived = { inner = { s:str = "x" } }
`
	suite := stdtypes.NewSuite()
	for i := 0; i <= len(input); i++ {
		assert.NotPanics(t, func() {
			tbl, _ := Parse(input[:i], suite)
			assert.NotNil(t, tbl)
		}, "prefix of length %d", i)
	}
}

func TestParseDiagnosticPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	var reported []*Diagnostic
	p := NewParser(stdtypes.NewSuite(),
		WithSourceName("test.edat"),
		WithReporter(func(d *Diagnostic) { reported = append(reported, d) }),
	)
	_, err := p.Parse("outer = {\n  inner = {\n    x:nope = \"1\"\n  }\n}\n")
	require.NoError(t, err)
	require.Len(t, reported, 1)
	d := reported[0]
	assert.Equal(t, "outer.inner", d.Path)
	assert.Equal(t, 3, d.Pos.Line)
	assert.Equal(t, `    x:nope = "1"`, d.LineText)
	assert.Equal(t, `test.edat:3:7: unknown type: no converter for type "nope" (in outer.inner)`, d.Error())
}

func TestParserReuse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	p := NewParser(stdtypes.NewSuite())
	_, err := p.Parse(`x:int "1"`)
	assert.Error(t, err)
	tbl, err := p.Parse(`x:int = "1"`)
	assert.NoError(t, err)
	assert.Empty(t, p.Diagnostics())
	assert.Equal(t, 1, table.GetOr(tbl, "x", 0))
}

func TestParseWithoutSuite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	p := NewParser(nil)
	tbl, err := p.Parse(`x:int = "1"`)
	assert.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Len(t, p.Diagnostics(), 1)
}

func TestParseIntoExistingTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	tbl, err := Parse(`base = { a:int = "1" }`, stdtypes.NewSuite())
	require.NoError(t, err)
	p := NewParser(stdtypes.NewSuite(), WithTable(tbl))
	result, err := p.Parse(`derived <- base = { b:int = "2" }`)
	require.NoError(t, err)
	assert.Same(t, tbl, result)
	assert.Equal(t, []string{"base", "derived"}, tbl.Names())
	a, _ := table.Path[int](tbl, "derived.a")
	assert.Equal(t, 1, a)
}

type runeCount struct {
	counts []int
}

func TestParseCloneCopiesStructValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	suite := stdtypes.NewSuite()
	convert.AddFunc(suite, "rc", func(s string) (runeCount, error) {
		return runeCount{counts: []int{len([]rune(s))}}, nil
	})
	tbl, err := Parse(`base = { r:rc = "abc" }
derived <- base = { }
`, suite)
	require.NoError(t, err)
	derived, ok := table.Path[*table.Table](tbl, "derived")
	require.True(t, ok)
	r, ok := table.Get[runeCount](derived, "r")
	require.True(t, ok)
	r.counts[0] = 99
	b, ok := table.Path[runeCount](tbl, "base.r")
	require.True(t, ok)
	assert.Equal(t, []int{3}, b.counts)
}
