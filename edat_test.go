package edat

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/edat/grammar"
	"github.com/npillmayer/edat/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringStandardTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	tbl, err := ParseString(`n:int = "7"; s:str = "x"`, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, table.GetOr(tbl, "n", 0))
	assert.Equal(t, "x", table.GetOr(tbl, "s", ""))
}

func TestParseFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "sample.edat")
	content := "base = {\n  a:int = \"1\"\n}\nderived <- base = {\n  b:int = \"2\"\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	tbl, err := ParseFile(path, nil)
	require.NoError(t, err)
	a, ok := table.Path[int](tbl, "derived.a")
	assert.True(t, ok)
	assert.Equal(t, 1, a)
}

func TestParseFileReportsSourceName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "broken.edat")
	require.NoError(t, os.WriteFile(path, []byte("x:int \"1\"\n"), 0o644))
	var reported int
	tbl, err := ParseFile(path, nil, grammar.WithReporter(func(d *grammar.Diagnostic) {
		reported++
	}))
	require.NotNil(t, tbl)
	var d *grammar.Diagnostic
	require.True(t, errors.As(err, &d))
	assert.True(t, strings.HasPrefix(d.Error(), path+":1:7:"), d.Error())
	assert.Equal(t, 1, reported)
}

func TestParseFileMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "edat.grammar")
	defer teardown()
	//
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.edat"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
