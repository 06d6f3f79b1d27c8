package tables

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

func TestDecodeLayerTable(t *testing.T) {
	src := "0\nTABLE\n2\nLAYER\n5\n2\n330\n0\n70\n1\n0\nLAYER\n5\n10\n330\n2\n100\nAcDbSymbolTableRecord\n100\nAcDbLayerTableRecord\n2\n0\n70\n0\n62\n7\n6\nCONTINUOUS\n370\n-3\n290\n1\n0\nENDTAB\n0\nENDSEC\n"
	r := core.NewReader(src)
	tb, err := Decode(r)
	require.NoError(t, err)
	require.Equal(t, 1, tb.Layer.Len())
	l, ok := tb.Layer.Get("0")
	require.True(t, ok)
	assert.Equal(t, 7, l.Color)
	assert.Equal(t, "CONTINUOUS", l.LineType)
	assert.True(t, l.Plots)
	assert.False(t, l.Flags.Frozen())
}

func TestLayerFlagsAccessors(t *testing.T) {
	f := LayerFrozen | LayerLocked
	assert.True(t, f.Frozen())
	assert.True(t, f.Locked())
	assert.False(t, f.XrefResolved())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tb := New()
	tb.Layer.Add(&Layer{Name: "0", Color: 7, LineType: "CONTINUOUS", Plots: true})
	tb.LType.Add(&LType{Name: "CONTINUOUS", Description: "Solid line", Dashes: nil})
	tb.Style.Add(&Style{Name: "STANDARD", WidthFactor: 1})

	var buf bytes.Buffer
	w := core.NewWriter(&buf)
	Encode(w, tb, version.R2013)

	r := core.NewReader(buf.String())
	// skip the 0/SECTION and 2/TABLES framing the way the document facade would
	_, _ = r.Advance()
	_, _ = r.Advance()
	got, err := Decode(r)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Layer.Len())
	l, ok := got.Layer.Get("0")
	require.True(t, ok)
	assert.Equal(t, "CONTINUOUS", l.LineType)

	lt, ok := got.LType.Get("CONTINUOUS")
	require.True(t, ok)
	assert.Equal(t, "Solid line", lt.Description)
}

func TestUnknownTableSurvivesRoundTrip(t *testing.T) {
	src := "0\nTABLE\n2\nFUTURETABLE\n70\n0\n0\nFUTURETABLE\n1\nhello\n0\nENDTAB\n0\nENDSEC\n"
	r := core.NewReader(src)
	tb, err := Decode(r)
	require.NoError(t, err)
	require.Len(t, tb.Unknown, 1)
	assert.Equal(t, "FUTURETABLE", tb.Unknown[0].Name)

	var buf bytes.Buffer
	Encode(core.NewWriter(&buf), tb, version.R2013)
	assert.Contains(t, buf.String(), "FUTURETABLE")
}

func TestEncodeOmitsBlockRecordBeforeR13(t *testing.T) {
	tb := New()
	tb.BlockRecord.Add(&BlockRecord{Name: "*Model_Space"})

	var buf bytes.Buffer
	Encode(core.NewWriter(&buf), tb, version.R12)
	assert.NotContains(t, buf.String(), "BLOCK_RECORD")
}
