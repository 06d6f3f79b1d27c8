package xdata

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/godxf/core"
)

func TestReadGroupsSimple(t *testing.T) {
	r := core.NewReader("102\n{ACAD_REACTORS\n330\n1A\n102\n}\n0\nLINE\n")
	groups, err := ReadGroups(r)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "ACAD_REACTORS", groups[0].Name)
	require.Len(t, groups[0].Pairs, 1)
	assert.Equal(t, 330, groups[0].Pairs[0].Code)

	next, err := r.Peek()
	require.NoError(t, err)
	assert.Equal(t, "LINE", next.Value)
}

func TestReadGroupsNested(t *testing.T) {
	r := core.NewReader("102\n{OUTER\n1\nx\n102\n{INNER\n2\ny\n102\n}\n102\n}\n")
	groups, err := ReadGroups(r)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	outer := groups[0]
	require.Len(t, outer.Nested, 1)
	assert.Equal(t, "INNER", outer.Nested[0].Name)
	items := outer.Items()
	require.Len(t, items, 2)
}

func TestGroupRoundTrip(t *testing.T) {
	src := "102\n{APP\n1\na\n102\n{SUB\n2\nb\n102\n}\n102\n}\n"
	r := core.NewReader(src)
	groups, err := ReadGroups(r)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := core.NewWriter(&buf)
	WriteGroups(w, groups)

	r2 := core.NewReader(buf.String())
	groups2, err := ReadGroups(r2)
	require.NoError(t, err)
	assert.Equal(t, groups[0].Name, groups2[0].Name)
	assert.Equal(t, groups[0].Nested[0].Name, groups2[0].Nested[0].Name)
}

func TestXDataReadAll(t *testing.T) {
	r := core.NewReader("1001\nACAD\n1000\nhello\n1040\n1.5\n0\nLINE\n")
	blocks, err := ReadAll(r)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "ACAD", blocks[0].App)
	require.Len(t, blocks[0].Pairs, 2)
}
