package entities

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

func decodeOne(t *testing.T, typeName, body string) Entity {
	t.Helper()
	r := core.NewReader(body + "0\r\nEOF\r\n")
	e := New(typeName)
	require.NotNil(t, e)
	require.NoError(t, e.Decode(r))
	return e
}

func TestLineRoundTrip(t *testing.T) {
	e := decodeOne(t, "LINE", "8\r\n0\r\n10\r\n1.000000\r\n20\r\n2.000000\r\n11\r\n3.000000\r\n21\r\n4.000000\r\n")
	line := e.(*Line)
	assert.Equal(t, core.Point{X: 1, Y: 2}, line.Start)
	assert.Equal(t, core.Point{X: 3, Y: 4}, line.End)

	var buf bytes.Buffer
	line.Encode(core.NewWriter(&buf), version.Latest)
	r2 := core.NewReader(buf.String() + "0\r\nEOF\r\n")
	got, err := ReadUntil(r2, "EOF")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, line.Start, got[0].(*Line).Start)
}

func TestLWPolylineBulge(t *testing.T) {
	e := decodeOne(t, "LWPOLYLINE", "70\r\n1\r\n10\r\n0.000000\r\n20\r\n0.000000\r\n42\r\n0.500000\r\n10\r\n1.000000\r\n20\r\n1.000000\r\n")
	lw := e.(*LWPolyline)
	require.Len(t, lw.Vertices, 2)
	assert.True(t, lw.Closed)
	assert.Equal(t, 0.5, lw.Vertices[0].Bulge)
}

func TestInsertWithAttributes(t *testing.T) {
	src := "2\r\nDOOR\r\n10\r\n0.000000\r\n20\r\n0.000000\r\n66\r\n1\r\n0\r\nATTRIB\r\n2\r\nNUM\r\n1\r\nD-01\r\n0\r\nSEQEND\r\n0\r\nEOF\r\n"
	r := core.NewReader(src)
	ins := New("INSERT").(*Insert)
	require.NoError(t, ins.Decode(r))
	assert.Equal(t, "DOOR", ins.BlockName)
	require.Len(t, ins.Attributes, 1)
	assert.Equal(t, map[string]string{"NUM": "D-01"}, ins.AttributeValues())
}

func TestUnknownEntitySurvives(t *testing.T) {
	r2 := core.NewReader("0\r\nFUTUREKIND\r\n8\r\n0\r\n1\r\nhello\r\n0\r\nEOF\r\n")
	entities, err := ReadUntil(r2, "EOF")
	require.NoError(t, err)
	require.Len(t, entities, 1)
	u, ok := entities[0].(*Unknown)
	require.True(t, ok)
	assert.Equal(t, "FUTUREKIND", u.Kind)

	var buf bytes.Buffer
	u.Encode(core.NewWriter(&buf), version.Latest)
	assert.Contains(t, buf.String(), "FUTUREKIND")
	assert.Contains(t, buf.String(), "hello")
}

func TestPolylineWithVertices(t *testing.T) {
	src := "70\r\n0\r\n0\r\nVERTEX\r\n10\r\n0.000000\r\n20\r\n0.000000\r\n0\r\nVERTEX\r\n10\r\n1.000000\r\n20\r\n1.000000\r\n0\r\nSEQEND\r\n0\r\nEOF\r\n"
	r := core.NewReader(src)
	pl := New("POLYLINE").(*Polyline)
	require.NoError(t, pl.Decode(r))
	require.Len(t, pl.Vertices, 2)
	assert.Equal(t, core.Point{X: 1, Y: 1}, pl.Vertices[1].Location)
}
