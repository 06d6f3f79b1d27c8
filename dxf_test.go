package dxf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/entities"
	"github.com/zooyer/godxf/tables"
)

const minimalDXF = "0\r\nSECTION\r\n2\r\nHEADER\r\n9\r\n$ACADVER\r\n1\r\nAC1015\r\n0\r\nENDSEC\r\n" +
	"0\r\nSECTION\r\n2\r\nTABLES\r\n0\r\nENDSEC\r\n" +
	"0\r\nSECTION\r\n2\r\nBLOCKS\r\n0\r\nENDSEC\r\n" +
	"0\r\nSECTION\r\n2\r\nENTITIES\r\n0\r\nLINE\r\n8\r\n0\r\n10\r\n0.000000\r\n20\r\n0.000000\r\n11\r\n1.000000\r\n21\r\n1.000000\r\n0\r\nENDSEC\r\n" +
	"0\r\nEOF\r\n"

func TestParseMinimalDocument(t *testing.T) {
	doc, err := Parse(minimalDXF)
	require.NoError(t, err)
	assert.Equal(t, "AC1015", doc.Header.String("$ACADVER"))
	require.Len(t, doc.Entities, 1)
	line, ok := doc.Entities[0].(*entities.Line)
	require.True(t, ok)
	assert.Equal(t, 1.0, line.End.X)
}

func TestSaveAssignsHandlesAndRoundTrips(t *testing.T) {
	doc := New()
	doc.Tables.Layer.Add(&tables.Layer{Name: "WALLS", Color: 1, LineType: "CONTINUOUS", Plots: true})
	doc.Entities = append(doc.Entities, &entities.Line{
		Header: entities.Header{Layer: "WALLS", Color: 256, LineType: "BYLAYER", LineWeight: -1},
		Start:  core.Point{X: 0, Y: 0},
		End:    core.Point{X: 10, Y: 0},
	})

	var buf bytes.Buffer
	require.NoError(t, doc.Save(&buf))

	line := doc.Entities[0].(*entities.Line)
	assert.NotZero(t, line.Handle)

	round, err := Parse(buf.String())
	require.NoError(t, err)
	require.Len(t, round.Entities, 1)
	got := round.Entities[0].(*entities.Line)
	assert.Equal(t, line.Start, got.Start)
	assert.Equal(t, line.End, got.End)

	l, ok := round.Tables.Layer.Get("WALLS")
	require.True(t, ok)
	assert.Equal(t, 1, l.Color)
}
